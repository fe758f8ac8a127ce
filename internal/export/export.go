// Package export writes a fetched memo collection to an output directory:
// one rendered file per memo, downloaded attachments under assets/, and an
// index of root memos.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/crestwood/memomd/internal"
	"github.com/crestwood/memomd/internal/content"
	"github.com/crestwood/memomd/internal/formatter"
	"github.com/crestwood/memomd/internal/memos"
)

const assetsDirName = "assets"

// ResourceFetcher streams attachment bytes by resource name.
type ResourceFetcher interface {
	GetResource(ctx context.Context, name string) (io.ReadCloser, error)
}

type Exporter struct {
	OutDir   string
	Format   internal.Format
	Fetcher  ResourceFetcher
	Mappings internal.Mappings
}

// Export writes every memo in the collection, in order, then the index.
// The output directory is created if absent; existing files are
// overwritten in place and stale files are never deleted. The first
// failed memo write aborts the run. Failed resource downloads are
// reported and skipped.
func (e *Exporter) Export(ctx context.Context, coll *memos.Collection) error {
	format := e.Format
	if format.Name == "" {
		format = internal.Markdown
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", e.OutDir, err)
	}

	for _, memo := range coll.Memos() {
		note := e.buildNote(ctx, memo, coll)

		path := filepath.Join(e.OutDir, Filestem(memo)+format.Ext)
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}

		if err := internal.Render(format, file, note); err != nil {
			file.Close()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return e.writeIndex(coll)
}

// buildNote resolves everything the formatter needs: tags with mappings
// applied, comment names from the collection, and the body with inline
// resource references rewritten and attachment links appended.
func (e *Exporter) buildNote(ctx context.Context, memo memos.Memo, coll *memos.Collection) formatter.Note {
	body := memo.Content

	for _, ref := range content.ResourceRefs(memo.Content) {
		resource, exists := findResource(memo.ResourceList, content.ResourceName(ref))
		if !exists {
			continue
		}
		body = strings.ReplaceAll(body, ref, assetsDirName+"/"+assetFilename(resource))
	}

	for _, resource := range memo.ResourceList {
		filename := assetFilename(resource)
		body += fmt.Sprintf("\n\n![%s](%s/%s)", filename, assetsDirName, filename)
		e.downloadResource(ctx, resource)
	}

	return formatter.Note{
		Memo:     memo,
		Body:     body,
		Tags:     e.Mappings.Apply(content.Tags(memo.Content)),
		Comments: coll.Comments(memo),
	}
}

// assetFilename prefixes the attachment filename with its creation
// timestamp, so same-named attachments from different memos coexist.
func assetFilename(resource memos.Resource) string {
	return fmt.Sprintf("%d_%s", resource.CreatedTs, sanitize(resource.Filename, strconv.Itoa(resource.ID)))
}

func findResource(resources []memos.Resource, name string) (memos.Resource, bool) {
	for _, resource := range resources {
		if resource.Name == name || strconv.Itoa(resource.ID) == name {
			return resource, true
		}
	}
	return memos.Resource{}, false
}

func (e *Exporter) downloadResource(ctx context.Context, resource memos.Resource) {
	if e.Fetcher == nil || resource.Name == "" {
		return
	}

	assetsDir := filepath.Join(e.OutDir, assetsDirName)
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create assets directory: %v\n", err)
		return
	}

	body, err := e.Fetcher.GetResource(ctx, resource.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to fetch resource %s: %v\n", resource.Name, err)
		return
	}
	defer body.Close()

	path := filepath.Join(assetsDir, assetFilename(resource))
	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create asset %s: %v\n", path, err)
		return
	}
	defer file.Close()

	if _, err := io.Copy(file, body); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save asset %s: %v\n", path, err)
	}
}

// writeIndex links every named root memo from index.md, in fetch order.
func (e *Exporter) writeIndex(coll *memos.Collection) error {
	var b strings.Builder
	b.WriteString("# Memos\n\n")

	for _, memo := range coll.Roots() {
		if memo.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "![[%s]]\n", memo.Name)
	}

	path := filepath.Join(e.OutDir, "index.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write index %s: %w", path, err)
	}

	return nil
}
