// ABOUTME: Result types returned by the content gateway
// ABOUTME: Separate an empty success from a degraded response while keeping the same shape

package content

import "wpblog-api/core/domain"

// PostPage is one page of posts. Pagination is nil when WordPress did not
// report totals; callers then treat Posts as a single unbounded page.
type PostPage struct {
	Posts      []domain.Post
	Pagination *domain.PaginationInfo

	// Err is the transport failure that emptied this page, nil on success
	Err error
}

// Degraded reports whether the page is empty because the remote call failed
func (p PostPage) Degraded() bool {
	return p.Err != nil
}

// List is an unpaginated collection
type List[T any] struct {
	Items []T

	// Err is the transport failure that emptied this list, nil on success
	Err error
}

// Degraded reports whether the list is empty because the remote call failed
func (l List[T]) Degraded() bool {
	return l.Err != nil
}

// Lookup is the outcome of a single-entity lookup. Value is nil when the entity
// does not exist or when the remote call failed; Err tells the two apart.
type Lookup[T any] struct {
	Value *T
	Err   error
}

// Found reports whether the entity was returned
func (l Lookup[T]) Found() bool {
	return l.Value != nil
}

// Degraded reports whether the lookup failed at the transport level
func (l Lookup[T]) Degraded() bool {
	return l.Err != nil
}

func emptyPostPage(err error) PostPage {
	return PostPage{Posts: []domain.Post{}, Err: err}
}

func emptyList[T any](err error) List[T] {
	return List[T]{Items: []T{}, Err: err}
}
