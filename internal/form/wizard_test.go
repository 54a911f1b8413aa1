package form

import (
	"context"
	"testing"

	"github.com/Amrutha2803/employee-list/internal/employees"
	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/notify"
	"github.com/Amrutha2803/employee-list/internal/query"
	"github.com/Amrutha2803/employee-list/internal/records"
	"github.com/Amrutha2803/employee-list/internal/storage/memory"
	"github.com/Amrutha2803/employee-list/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled() models.Input {
	return models.Input{
		Name:       "Asha Rao",
		EmailID:    "asha@example.com",
		ContactNo:  "+91 98765 43210",
		Department: "HR",
		City:       "Chennai",
		Pincode:    "600001",
	}
}

func newService() *employees.Service {
	return employees.NewService(records.NewKVStore(memory.New(), "", nil), &notify.Recorder{}, nil, nil)
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	w := NewWizard(validation.New(), models.ModeAdd, models.Input{Name: "Asha Rao"})
	assert.Equal(t, 1, w.Step())
	assert.Nil(t, w.Errors())

	assert.False(t, w.Next())
	assert.Equal(t, 1, w.Step())

	errs := w.Errors()
	assert.Equal(t, []string{"contactNo", "emailId"}, errs.Fields())
	// step two fields are not touched yet
	assert.False(t, errs.Has("Pincode"))

	in := filled()
	require.NoError(t, w.Set(in))
	assert.True(t, w.Next())
	assert.Equal(t, 2, w.Step())
	assert.False(t, w.Next())

	w.Prev()
	w.Prev()
	assert.Equal(t, 1, w.Step())
}

func TestSubmitAdd(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	w := NewWizard(svc.Validator(), models.ModeAdd, filled())

	_, _, err := w.Submit(ctx, svc)
	assert.ErrorIs(t, err, ErrNotLast)

	require.True(t, w.Next())
	rec, ok, err := w.Submit(ctx, svc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, rec.EmpID)
}

func TestSubmitInvalidMarksEverythingTouched(t *testing.T) {
	in := filled()
	in.Gender = "Unknown"
	w := NewWizard(validation.New(), models.ModeAdd, in)
	require.True(t, w.Next())

	_, _, err := w.Submit(context.Background(), newService())
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, []string{"oneof"}, w.Errors()["gender"])
}

func TestSubmitEdit(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.Create(ctx, filled())
	require.NoError(t, err)

	current, err := svc.Get(ctx, 1)
	require.NoError(t, err)

	in := models.InputFrom(current)
	in.City = "Madurai"
	w := NewWizard(svc.Validator(), models.ModeEdit, in)
	require.True(t, w.Next())

	rec, ok, err := w.Submit(ctx, svc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Madurai", rec.City)
	assert.Equal(t, 1, rec.EmpID)

	in.EmailID = "someone-else@example.com"
	w = NewWizard(svc.Validator(), models.ModeEdit, in)
	require.True(t, w.Next())
	_, ok, err = w.Submit(ctx, svc)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestViewModeIsReadOnly(t *testing.T) {
	w := NewWizard(validation.New(), models.ModeView, models.Input{})
	assert.Equal(t, 2, w.Step())
	assert.True(t, w.ReadOnly())
	assert.ErrorIs(t, w.Set(filled()), ErrReadOnly)

	w.Prev()
	assert.True(t, w.Next())
	assert.Nil(t, w.Errors())

	_, _, err := w.Submit(context.Background(), newService())
	assert.ErrorIs(t, err, ErrReadOnly)
}

func TestReset(t *testing.T) {
	w := NewWizard(validation.New(), models.ModeAdd, filled())
	require.True(t, w.Next())
	w.Reset()
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, models.Input{}, w.Input())
	assert.Nil(t, w.Errors())
}

func TestStepFields(t *testing.T) {
	fields, err := StepFields(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Department", "city", "state", "Pincode"}, fields)

	_, err = StepFields(3)
	assert.ErrorIs(t, err, ErrNoSuchStep)
}

func TestSubmitResetsFormSoItCannotSaveTwice(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	w := NewWizard(svc.Validator(), models.ModeAdd, filled())
	require.True(t, w.Next())

	_, ok, err := w.Submit(ctx, svc)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, models.Input{}, w.Input())
	assert.Nil(t, w.Errors())

	_, _, err = w.Submit(ctx, svc)
	assert.ErrorIs(t, err, ErrNotLast)

	all, err := svc.List(ctx, query.NewView())
	require.NoError(t, err)
	assert.Equal(t, 1, all.Total)
}

func TestSubmitEditResetsEvenWithoutMatch(t *testing.T) {
	svc := newService()
	w := NewWizard(svc.Validator(), models.ModeEdit, filled())
	require.True(t, w.Next())

	_, ok, err := w.Submit(context.Background(), svc)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, models.Input{}, w.Input())
}

func TestSubmitKeepsFormWhenSaveFails(t *testing.T) {
	in := filled()
	w := NewWizard(validation.New(), models.ModeAdd, in)
	require.True(t, w.Next())

	_, _, err := w.Submit(context.Background(), failingSubmitter{})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 2, w.Step())
	assert.Equal(t, in, w.Input())
}

type failingSubmitter struct{}

func (failingSubmitter) Create(context.Context, models.Input) (models.Employee, error) {
	return models.Employee{}, assert.AnError
}

func (failingSubmitter) Update(context.Context, models.Patch) (models.Employee, bool, error) {
	return models.Employee{}, false, assert.AnError
}
