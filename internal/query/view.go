package query

import "github.com/Amrutha2803/employee-list/internal/models"

// View is the state of one listing: search term, sort, and pager position.
// Apply derives the visible page from the full collection.
type View struct {
	Search   string
	Sort     SortState
	PageSize int
	Page     int
}

func NewView() *View {
	return &View{PageSize: DefaultPageSize, Page: 1}
}

func (v *View) SetSearch(term string) {
	v.Search = term
}

// ToggleSort applies a column click. Clicks on an empty listing are ignored.
func (v *View) ToggleSort(records []models.Employee, column string) {
	if len(Filter(records, v.Search)) == 0 {
		return
	}
	v.Sort.Toggle(column)
}

// SetPageSize changes the page size and goes back to the first page.
func (v *View) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return ErrInvalidPageSize
	}
	v.PageSize = size
	v.Page = 1
	return nil
}

func (v *View) GoTo(page int) {
	v.Page = page
}

func (v *View) ResetPage() {
	v.Page = 1
}

// Apply filters, sorts and paginates records. The stored page is clamped to
// the result so later navigation starts from a real page.
func (v *View) Apply(records []models.Employee) (Page, error) {
	visible := Filter(records, v.Search)
	if v.Sort.Column != "" {
		visible = Sort(visible, v.Sort.Column, v.Sort.Ascending)
	}

	page, err := Paginate(visible, v.PageSize, v.Page)
	if err != nil {
		return Page{}, err
	}
	v.Page = page.Page
	return page, nil
}
