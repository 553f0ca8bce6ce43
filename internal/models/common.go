package models

// Sort directions accepted by list endpoints.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery carries the paging and ordering fields shared by every list
// filter. Zero values fall back to endpoint defaults and are omitted from
// the outbound query.
type ListQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
