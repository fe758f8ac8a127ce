package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-yaml"
)

const timestampLayout = "2006-01-02 15:04:05"

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

type frontMatter struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	CreatorID   int      `yaml:"creatorId"`
	CreatorName string   `yaml:"creatorName"`
	Visibility  string   `yaml:"visibility"`
	Pinned      bool     `yaml:"pinned"`
	Tags        []string `yaml:"tags,omitempty"`
	CreatedTs   string   `yaml:"createdTs"`
	UpdatedTs   string   `yaml:"updatedTs"`
}

// formatTimestamp renders a unix timestamp for the front matter. Zero
// means the field was absent from the API response.
func formatTimestamp(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.Unix(ts, 0).UTC().Format(timestampLayout)
}

func (f *MarkdownFormatter) Format(w io.Writer, note Note) error {
	memo := note.Memo
	created := formatTimestamp(memo.CreatedTs)

	fm := frontMatter{
		ID:          memo.ID,
		Name:        memo.Name,
		CreatorID:   memo.CreatorID,
		CreatorName: memo.CreatorName,
		Visibility:  memo.Visibility,
		Pinned:      memo.Pinned,
		Tags:        note.Tags,
		CreatedTs:   created,
		UpdatedTs:   formatTimestamp(memo.UpdatedTs),
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w, yaml.Indent(2))
	if err := encoder.Encode(fm); err != nil {
		return fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "---\n\n[[%s - %s]](%s)\n\n", memo.CreatorName, created, memo.Name); err != nil {
		return err
	}

	if _, err := io.WriteString(w, note.Body); err != nil {
		return err
	}

	return writeComments(w, note.Comments)
}

func writeComments(w io.Writer, comments []string) error {
	if len(comments) == 0 {
		return nil
	}

	plural := ""
	if len(comments) > 1 {
		plural = "s"
	}

	if _, err := fmt.Fprintf(w, "\n\n<details><summary>%d comment%s</summary>\n", len(comments), plural); err != nil {
		return err
	}
	for _, comment := range comments {
		if _, err := fmt.Fprintf(w, "\n![[%s]]", comment); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n</details>")
	return err
}
