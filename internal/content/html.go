package content

import (
	"strings"

	"golang.org/x/net/html"
)

const resourcePathPrefix = "/o/r/"

// ResourceRefs finds resource paths referenced by inline HTML in the memo
// body, e.g. <img src="/o/r/42">. Memos serves attachments under /o/r/,
// so these are the references the exporter can rewrite to local assets.
func ResourceRefs(source string) []string {
	var refs []string
	seen := make(map[string]struct{})

	tokenizer := html.NewTokenizer(strings.NewReader(source))
	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			return refs
		}
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()
		for _, attr := range token.Attr {
			key := strings.ToLower(attr.Key)
			if key != "src" && key != "href" {
				continue
			}
			if !strings.HasPrefix(attr.Val, resourcePathPrefix) {
				continue
			}
			if _, dup := seen[attr.Val]; dup {
				continue
			}
			seen[attr.Val] = struct{}{}
			refs = append(refs, attr.Val)
		}
	}
}

// ResourceName strips the serving prefix from a resource path, returning
// the name Memos uses to identify the attachment.
func ResourceName(ref string) string {
	return strings.TrimPrefix(ref, resourcePathPrefix)
}
