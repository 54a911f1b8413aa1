package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amrutha2803/employee-list/internal/storage"
)

const ConfirmBeforeDeleteKey = "confirmBeforeDelete"

// Preferences exposes the stored delete-confirmation flag. It is read only:
// deletes always ask for confirmation whatever it says.
type Preferences struct {
	backend storage.Backend
}

func NewPreferences(backend storage.Backend) *Preferences {
	return &Preferences{backend: backend}
}

// ConfirmBeforeDelete is true unless the stored value is exactly "false".
func (p *Preferences) ConfirmBeforeDelete(ctx context.Context) (bool, error) {
	raw, err := p.backend.Get(ctx, ConfirmBeforeDeleteKey)
	if errors.Is(err, storage.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return true, fmt.Errorf("read %s: %w", ConfirmBeforeDeleteKey, err)
	}
	return string(raw) != "false", nil
}
