// Package formatter renders a single memo, with its precomputed body and
// resolved metadata, into an output document.
package formatter

import (
	"io"

	"github.com/crestwood/memomd/internal/memos"
)

// Note is the fully resolved input to a formatter: the memo itself, its
// body after resource rewriting, and metadata derived from the
// surrounding collection. Formatting a Note performs no I/O beyond the
// writer and is deterministic for equal inputs.
type Note struct {
	Memo     memos.Memo
	Body     string
	Tags     []string
	Comments []string
}

type Formatter interface {
	Format(w io.Writer, note Note) error
}
