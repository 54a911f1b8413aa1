package employees

import (
	"context"

	"github.com/Amrutha2803/employee-list/internal/query"
)

// Listing is one user's list screen: a view over the collection plus the
// delete prompt.
type Listing struct {
	svc   *Service
	View  *query.View
	Guard DeleteGuard
}

func NewListing(svc *Service) *Listing {
	return &Listing{svc: svc, View: query.NewView()}
}

func (l *Listing) Page(ctx context.Context) (query.Page, error) {
	return l.svc.List(ctx, l.View)
}

func (l *Listing) Search(term string) {
	l.View.SetSearch(term)
}

// SortBy toggles the sort on column against the current collection.
func (l *Listing) SortBy(ctx context.Context, column string) error {
	all, err := l.svc.load(ctx)
	if err != nil {
		return err
	}
	l.View.ToggleSort(all, column)
	return nil
}

func (l *Listing) RequestDelete(id int) {
	l.Guard.Request(id)
}

// ConfirmDelete deletes the pending record. The view goes back to page 1 only
// when a record was actually removed.
func (l *Listing) ConfirmDelete(ctx context.Context, dontAskAgain bool) (bool, error) {
	id, ok := l.Guard.Confirm(dontAskAgain)
	if !ok {
		return false, nil
	}
	deleted, err := l.svc.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		l.View.ResetPage()
	}
	return deleted, nil
}

func (l *Listing) CancelDelete() {
	l.Guard.Cancel()
}
