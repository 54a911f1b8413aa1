package records

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Amrutha2803/employee-list/internal/storage"
)

// Sequence hands out increasing ids and persists the last one issued, so an id
// is never reused after a delete.
type Sequence struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewSequence(backend storage.Backend) *Sequence {
	return &Sequence{backend: backend}
}

// Next returns an id greater than both the stored counter and floor. floor lets
// the caller move past ids that already exist in the collection.
func (s *Sequence) Next(ctx context.Context, floor int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := 0
	raw, err := s.backend.Get(ctx, SequenceKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return 0, fmt.Errorf("read %s: %w", SequenceKey, err)
	default:
		last, err = strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", SequenceKey, err)
		}
	}

	next := max(last, floor) + 1
	if err := s.backend.Put(ctx, SequenceKey, []byte(strconv.Itoa(next))); err != nil {
		return 0, fmt.Errorf("write %s: %w", SequenceKey, err)
	}
	return next, nil
}
