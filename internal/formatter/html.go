package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"

	"github.com/crestwood/memomd/internal/content"
)

type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

type templateNote struct {
	Title       string
	ID          int
	Name        string
	CreatorName string
	Visibility  string
	Pinned      bool
	TagsString  string
	CreatedTs   string
	UpdatedTs   string
	Comments    []string
	Body        string
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<dl>
<dt>id</dt><dd>{{.ID}}</dd>
<dt>name</dt><dd>{{.Name}}</dd>
<dt>creator</dt><dd>{{.CreatorName}}</dd>
<dt>visibility</dt><dd>{{.Visibility}}</dd>
<dt>pinned</dt><dd>{{.Pinned}}</dd>
{{- if .TagsString}}
<dt>tags</dt><dd>{{.TagsString}}</dd>
{{- end}}
<dt>created</dt><dd>{{.CreatedTs}}</dd>
<dt>updated</dt><dd>{{.UpdatedTs}}</dd>
</dl>
{{.Body}}
{{- if .Comments}}
<details><summary>{{len .Comments}} comments</summary>
<ul>
{{- range .Comments}}
<li>{{.}}</li>
{{- end}}
</ul>
</details>
{{- end}}
</body>
</html>
`

func (f *HTMLFormatter) Format(w io.Writer, note Note) error {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(note.Body), &body); err != nil {
		return fmt.Errorf("failed to convert memo body to HTML: %w", err)
	}

	memo := note.Memo
	title := content.Title(memo.Content)
	if title == "" {
		title = memo.Name
	}

	data := templateNote{
		Title:       title,
		ID:          memo.ID,
		Name:        memo.Name,
		CreatorName: memo.CreatorName,
		Visibility:  memo.Visibility,
		Pinned:      memo.Pinned,
		TagsString:  strings.Join(note.Tags, ","),
		CreatedTs:   formatTimestamp(memo.CreatedTs),
		UpdatedTs:   formatTimestamp(memo.UpdatedTs),
		Comments:    note.Comments,
		Body:        strings.TrimRight(body.String(), "\n"),
	}

	t, err := template.New("html").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return t.Execute(w, data)
}
