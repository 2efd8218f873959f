package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

// Article is the aggregate root. Authors are stored as account-id
// references and resolved to full views at read time; both AuthorIDs and
// Keywords behave as unordered sets with no duplicates.
type Article struct {
	ID          string
	Header      string
	ShortDesc   string
	Text        string
	PublishDate time.Time
	AuthorIDs   []string
	Keywords    []string
}

// AddAuthor appends id to the author set if not already present. Existing
// authors are never removed.
func (a *Article) AddAuthor(id string) {
	for _, existing := range a.AuthorIDs {
		if existing == id {
			return
		}
	}
	a.AuthorIDs = append(a.AuthorIDs, id)
}

// DedupKeywords returns keywords with duplicates removed, preserving the
// first occurrence order.
func DedupKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
