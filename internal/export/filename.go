package export

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/crestwood/memomd/internal/memos"
)

// Filestem picks the output filename stem for a memo: its name when the
// API provides one, otherwise its numeric id. Stems are not checked for
// collisions; duplicates silently overwrite, mirroring the id-uniqueness
// guarantee of the source.
func Filestem(memo memos.Memo) string {
	if memo.Name == "" {
		return strconv.Itoa(memo.ID)
	}
	return sanitize(memo.Name, strconv.Itoa(memo.ID))
}

// sanitize turns a memo name into a safe single-path-component filename.
// Names arrive in whatever normalization the client that created the memo
// used, so they are normalized to NFC first.
func sanitize(name, fallback string) string {
	name = norm.NFC.String(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			b.WriteByte('-')
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}

	stem := strings.Trim(b.String(), " .")
	if stem == "" {
		return fallback
	}
	return stem
}
