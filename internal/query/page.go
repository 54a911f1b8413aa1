package query

import (
	"errors"

	"github.com/Amrutha2803/employee-list/internal/models"
)

const DefaultPageSize = 5

var PageSizes = []int{5, 10, 20, 50}

var ErrInvalidPageSize = errors.New("page size must be one of 5, 10, 20, 50")

type Page struct {
	Items      []models.Employee `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}

// Pages lists the page numbers 1..TotalPages for a pager control.
func (p Page) Pages() []int {
	out := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		out = append(out, i)
	}
	return out
}

func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPages is never below one, even for an empty collection.
func TotalPages(count, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the 1-based page of records. Out-of-range pages are clamped.
func Paginate(records []models.Employee, size, page int) (Page, error) {
	if !ValidPageSize(size) {
		return Page{}, ErrInvalidPageSize
	}

	total := TotalPages(len(records), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := start + size
	if end > len(records) {
		end = len(records)
	}

	items := make([]models.Employee, 0, end-start)
	items = append(items, records[start:end]...)

	return Page{
		Items:      items,
		Page:       page,
		PageSize:   size,
		TotalPages: total,
		Total:      len(records),
	}, nil
}
