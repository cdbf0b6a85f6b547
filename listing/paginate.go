package listing

// Page is one page of a listing
type Page[T any] struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	Items      []T
}

// TotalPages returns ceil(n/size), and 1 for an empty listing
func TotalPages(n, size int) int {
	if size <= 0 {
		return 0
	}
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate slices items into the requested 1-based page.
// A page below 1 is read as page 1; a page past the end comes back empty.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if size <= 0 {
		return Page[T]{}, ErrInvalidPageSize
	}
	if page < 1 {
		page = 1
	}

	p := Page[T]{
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), size),
		Items:      []T{},
	}

	start := (page - 1) * size
	if start >= len(items) {
		return p, nil
	}
	end := min(start+size, len(items))
	p.Items = append(p.Items, items[start:end]...)
	return p, nil
}
