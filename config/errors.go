package config

import "fmt"

// Error is a malformed configuration file, reported with its location.
type Error struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FlagError is a command line flag whose value parsed but is not usable.
type FlagError struct {
	Flag string
	Msg  string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("--%s %s", e.Flag, e.Msg)
}
