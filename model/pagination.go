package model

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Paginate clamps list paging arguments.
func Paginate(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
