package book

// AuthorLink is one row of the book_authors relationship. Order is the
// 1-based position of the author within the book's author list.
type AuthorLink struct {
	BookID   int64
	AuthorID int64
	Order    int
}

// NormalizeAuthorIDs removes duplicate ids, keeping the first occurrence
// of each. The result order is the caller's order and is what gets
// persisted as author_order.
func NormalizeAuthorIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	normalized := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}
	return normalized
}

// BuildAuthorLinks turns a normalized id list into relationship rows with
// monotonically assigned 1-based order values.
func BuildAuthorLinks(bookID int64, authorIDs []int64) []AuthorLink {
	links := make([]AuthorLink, len(authorIDs))
	for i, authorID := range authorIDs {
		links[i] = AuthorLink{
			BookID:   bookID,
			AuthorID: authorID,
			Order:    i + 1,
		}
	}
	return links
}
