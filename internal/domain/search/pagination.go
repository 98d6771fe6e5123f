package search

import "rentacar/internal/domain/vehicle"

// Page is one slice of the filtered result set. An empty result set still
// reports page 1 of 1.
type Page struct {
	Items      []vehicle.Vehicle
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices items at a fixed page size, clamping the requested page
// into [1, totalPages].
func Paginate(items []vehicle.Vehicle, requestedPage, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := requestedPage
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
