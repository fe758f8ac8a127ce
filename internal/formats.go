package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/crestwood/memomd/internal/formatter"
)

// Format is an output format for exported memos.
type Format struct {
	Name string
	Ext  string
}

func (f Format) String() string { return f.Name }

var (
	Markdown = Format{"markdown", ".md"}
	HTML     = Format{"html", ".html"}
)

var allFormats = []Format{Markdown, HTML}

var formatters = map[Format]formatter.Formatter{
	Markdown: formatter.NewMarkdownFormatter(),
	HTML:     formatter.NewHTMLFormatter(),
}

func AllFormats() []Format {
	return allFormats
}

// Set implements flag.Value so a Format can be bound to a CLI flag.
func (f *Format) Set(value string) error {
	normalized := strings.ToLower(value)
	for _, format := range allFormats {
		if format.Name == normalized {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", value)
}

// Render writes one note in the given format.
func Render(format Format, w io.Writer, note formatter.Note) error {
	fm, ok := formatters[format]
	if !ok {
		return fmt.Errorf("no formatter available for format: %s", format.Name)
	}
	return fm.Format(w, note)
}
