package service

// Page describes pagination input for list endpoints. Number is 1-based
// and optional (nil means the first page); Size defaults vary per endpoint
// and are filled in by the handler before validation.
type Page struct {
	Number *int
	Size   int
}

// Validate rejects a present non-positive page number or a non-positive
// page size before any storage access.
func (p Page) Validate() error {
	e := &ValidationError{}
	if p.Number != nil && *p.Number <= 0 {
		e.add("page", "must be greater than zero")
	}
	if p.Size <= 0 {
		e.add("pageSize", "must be greater than zero")
	}
	return e.orNil()
}

// Offset returns the record offset for the page, (page-1)*pageSize.
func (p Page) Offset() int {
	n := 1
	if p.Number != nil {
		n = *p.Number
	}
	return (n - 1) * p.Size
}
