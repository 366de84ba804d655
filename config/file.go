package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/moto-design/svggen/palette"
	"github.com/moto-design/svggen/utils"
)

// Section names of the configuration file.
const (
	SectionParams  = "params"
	SectionPalette = "palette"
)

// Entry is one name=value line of the params section.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// File is the parsed content of a configuration file.
type File struct {
	Name    string
	Params  []Entry
	Palette []palette.Entry
	// Duplicates holds params entries ignored because the key was seen before.
	Duplicates []Entry
}

// HasPalette reports whether the file defines palette entries.
func (f *File) HasPalette() bool {
	return len(f.Palette) > 0
}

// Lookup returns the params entry key.
func (f *File) Lookup(key string) (Entry, bool) {
	for _, e := range f.Params {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Position locates a params entry in a configuration file.
type Position struct {
	File string
	Line int
	Key  string
}

// Position returns the location of the params entry key. Line is zero
// when the file has no such entry.
func (f *File) Position(key string) Position {
	e, _ := f.Lookup(key)
	return Position{File: f.Name, Line: e.Line, Key: key}
}

type section int

const (
	sectionNone section = iota
	sectionParams
	sectionPalette
)

var sections = map[string]section{
	SectionParams:  sectionParams,
	SectionPalette: sectionPalette,
}

// parser is a line driven state machine; the current section selects the
// handler for data lines.
type parser struct {
	file    *File
	allowed map[section]bool
	current section
	seen    map[string]bool
	line    int
}

// Load reads the configuration file at path.
// Only the sections listed in allowed are accepted.
func Load(path string, allowed ...string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{File: path, Msg: "cannot open file", Err: err}
	}
	defer f.Close()

	return Parse(f, path, allowed...)
}

// Parse reads a configuration from r. name is used in error messages.
func Parse(r io.Reader, name string, allowed ...string) (*File, error) {
	p := &parser{
		file:    &File{Name: name},
		allowed: make(map[section]bool),
		seen:    make(map[string]bool),
	}
	for _, a := range allowed {
		if s, ok := sections[a]; ok {
			p.allowed[s] = true
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line++
		if err := p.feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{File: name, Line: p.line, Msg: "read failed", Err: errors.Wrapf(err, "scanning %s", name)}
	}
	return p.file, nil
}

func (p *parser) errorf(format string, a ...any) error {
	return &Error{File: p.file.Name, Line: p.line, Msg: fmt.Sprintf(format, a...)}
}

func (p *parser) feed(raw string) error {
	line := cleanLine(raw)
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, "[") {
		if !strings.HasSuffix(line, "]") {
			return p.errorf("malformed section header %q", line)
		}
		name := strings.TrimSpace(line[1 : len(line)-1])
		s, ok := sections[name]
		if !ok || !p.allowed[s] {
			return p.errorf("unknown section [%s]", name)
		}
		p.current = s
		return nil
	}

	switch p.current {
	case sectionParams:
		return p.param(line)
	case sectionPalette:
		return p.paletteEntry(line)
	}
	return p.errorf("data outside of a section: %q", line)
}

func (p *parser) param(line string) error {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return p.errorf("missing '=' in %q", line)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return p.errorf("missing parameter name in %q", line)
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return p.errorf("missing value for %s", key)
	}

	e := Entry{Key: key, Value: fields[0], Line: p.line}
	if p.seen[key] {
		p.file.Duplicates = append(p.file.Duplicates, e)
		return nil
	}
	p.seen[key] = true
	p.file.Params = append(p.file.Params, e)
	return nil
}

func (p *parser) paletteEntry(line string) error {
	w, c, ok := strings.Cut(line, ",")
	if !ok {
		return p.errorf("missing ',' in %q", line)
	}
	weight, err := utils.ParseUnsigned(strings.TrimSpace(w))
	if err != nil {
		return &Error{File: p.file.Name, Line: p.line, Msg: "bad palette weight", Err: err}
	}
	color, err := palette.ParseColor(firstField(c))
	if err != nil {
		return &Error{File: p.file.Name, Line: p.line, Msg: "bad palette color", Err: err}
	}
	p.file.Palette = append(p.file.Palette, palette.Entry{Weight: weight, Color: color})
	return nil
}

// cleanLine strips surrounding blanks and a trailing comment. A '#' that
// starts a hex color is part of the data.
func cleanLine(s string) string {
	s = strings.TrimLeft(s, " \t\r")
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			continue
		}
		if i+7 <= len(s) && palette.IsHexColor(s[i:i+7]) {
			i += 6
			continue
		}
		s = s[:i]
		break
	}
	return strings.TrimRight(s, " \t\r")
}

func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
