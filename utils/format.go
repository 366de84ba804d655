package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used accross the generators.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used accross the generators.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// Decorator colors the status messages written to the terminal.
// A disabled decorator returns the text unchanged, which is what
// should happen when stderr is redirected to a file.
type Decorator struct {
	Enabled bool
}

// Text shows the message types in different colors.
func (d Decorator) Text(s string, msgType MessageType) string {
	if !d.Enabled {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// Status builds the one line summary printed after a generator run.
func (d Decorator) Status(program, msg string, ok bool) string {
	mark, kind := "✔", SuccessMessage
	if !ok {
		mark, kind = "✘", ErrorMessage
	}
	return fmt.Sprintf("%s %s %s",
		d.Text(program, StatusMessage),
		d.Text("⇢ "+msg, DefaultMessage),
		d.Text(mark, kind),
	)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	}
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
}
