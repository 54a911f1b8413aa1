// Package employees implements the record lifecycle: list, create, update and
// delete over the stored collection.
package employees

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Amrutha2803/employee-list/internal/apperror"
	"github.com/Amrutha2803/employee-list/internal/logger"
	"github.com/Amrutha2803/employee-list/internal/metrics"
	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/notify"
	"github.com/Amrutha2803/employee-list/internal/query"
	"github.com/Amrutha2803/employee-list/internal/records"
	"github.com/Amrutha2803/employee-list/internal/validation"
)

const (
	MsgSaved   = "Employee saved successfully!"
	MsgUpdated = "Employee updated!"
	MsgDeleted = "Employee deleted!"
)

type Service struct {
	mu        sync.Mutex
	store     records.Store
	seq       *records.Sequence
	validator *validation.Validator
	notifier  notify.Notifier
	log       *logger.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

// WithSequence switches id assignment from count+1 to a persisted counter.
func WithSequence(seq *records.Sequence) Option {
	return func(s *Service) { s.seq = seq }
}

func NewService(store records.Store, notifier notify.Notifier, log *logger.Logger, m *metrics.Metrics, opts ...Option) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	if m == nil {
		m = metrics.New()
	}
	s := &Service{
		store:     store,
		validator: validation.New(),
		notifier:  notifier,
		log:       log,
		metrics:   m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Validator() *validation.Validator { return s.validator }

// List loads the collection and applies the view to it.
func (s *Service) List(ctx context.Context, view *query.View) (query.Page, error) {
	all, err := s.load(ctx)
	if err != nil {
		return query.Page{}, err
	}
	page, err := view.Apply(all)
	if errors.Is(err, query.ErrInvalidPageSize) {
		return query.Page{}, apperror.New(apperror.CodeValidation, err.Error())
	}
	return page, err
}

func (s *Service) Get(ctx context.Context, id int) (models.Employee, error) {
	all, err := s.load(ctx)
	if err != nil {
		return models.Employee{}, err
	}
	for _, e := range all {
		if e.EmpID == id {
			return e, nil
		}
	}
	return models.Employee{}, apperror.New(apperror.CodeNotFound, fmt.Sprintf("employee %d not found", id))
}

func (s *Service) Create(ctx context.Context, in models.Input) (models.Employee, error) {
	started := time.Now()
	if fe := s.validator.Validate(in); fe != nil {
		s.metrics.Observe("create", metrics.OutcomeInvalid, started)
		return models.Employee{}, apperror.Validation("validation failed", fe)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		s.metrics.Observe("create", metrics.OutcomeError, started)
		return models.Employee{}, err
	}

	id, err := s.nextID(ctx, all)
	if err != nil {
		s.metrics.Observe("create", metrics.OutcomeError, started)
		return models.Employee{}, err
	}

	rec := in.Record(id)
	all = append([]models.Employee{rec}, all...)
	if err := s.save(ctx, all); err != nil {
		s.metrics.Observe("create", metrics.OutcomeError, started)
		return models.Employee{}, err
	}

	s.metrics.Observe("create", metrics.OutcomeOK, started)
	s.log.Info("employee created", "emp_id", rec.EmpID)
	s.notifier.Notify(ctx, MsgSaved, notify.Success)
	return rec, nil
}

// Update merges p into the first record whose email matches. The fields present
// in p are validated before the lookup. When nothing matches it reports false
// and leaves the collection untouched.
func (s *Service) Update(ctx context.Context, p models.Patch) (models.Employee, bool, error) {
	started := time.Now()

	present := models.InputFrom(p.Apply(models.Employee{EmailID: p.EmailID}))
	if fe := s.validator.ValidateFields(present, p.Fields()...); fe != nil {
		s.metrics.Observe("update", metrics.OutcomeInvalid, started)
		return models.Employee{}, false, apperror.Validation("validation failed", fe)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		s.metrics.Observe("update", metrics.OutcomeError, started)
		return models.Employee{}, false, err
	}

	idx := -1
	for i, e := range all {
		if e.EmailID == p.EmailID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.metrics.Observe("update", metrics.OutcomeNoop, started)
		s.log.Debug("update matched no record", "email", p.EmailID)
		return models.Employee{}, false, nil
	}

	merged := p.Apply(all[idx])
	if fe := s.validator.Validate(models.InputFrom(merged)); fe != nil {
		s.metrics.Observe("update", metrics.OutcomeInvalid, started)
		return models.Employee{}, false, apperror.Validation("validation failed", fe)
	}

	all[idx] = merged
	if err := s.save(ctx, all); err != nil {
		s.metrics.Observe("update", metrics.OutcomeError, started)
		return models.Employee{}, false, err
	}

	s.metrics.Observe("update", metrics.OutcomeOK, started)
	s.log.Info("employee updated", "emp_id", merged.EmpID)
	s.notifier.Notify(ctx, MsgUpdated, notify.Info)
	return merged, true, nil
}

// Delete removes the first record with id. A missing id reports false.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	started := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		s.metrics.Observe("delete", metrics.OutcomeError, started)
		return false, err
	}

	idx := -1
	for i, e := range all {
		if e.EmpID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.metrics.Observe("delete", metrics.OutcomeNotFound, started)
		return false, nil
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := s.save(ctx, all); err != nil {
		s.metrics.Observe("delete", metrics.OutcomeError, started)
		return false, err
	}

	s.metrics.Observe("delete", metrics.OutcomeOK, started)
	s.log.Info("employee deleted", "emp_id", id)
	s.notifier.Notify(ctx, MsgDeleted, notify.Error)
	return true, nil
}

func (s *Service) nextID(ctx context.Context, all []models.Employee) (int, error) {
	if s.seq == nil {
		return len(all) + 1, nil
	}
	highest := 0
	for _, e := range all {
		highest = max(highest, e.EmpID)
	}
	return s.seq.Next(ctx, highest)
}

func (s *Service) load(ctx context.Context) ([]models.Employee, error) {
	all, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error("load employees", "error", err)
		return nil, apperror.New(apperror.CodeInternal, "could not load employees")
	}
	s.metrics.SetRecords(len(all))
	return all, nil
}

func (s *Service) save(ctx context.Context, all []models.Employee) error {
	if err := s.store.SaveAll(ctx, all); err != nil {
		s.log.Error("save employees", "error", err)
		return apperror.New(apperror.CodeInternal, "could not save employees")
	}
	s.metrics.SetRecords(len(all))
	return nil
}
