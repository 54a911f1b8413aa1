package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAndGauge(t *testing.T) {
	m := New()

	m.Observe("create", OutcomeOK, time.Now())
	m.Observe("create", OutcomeOK, time.Now())
	m.Observe("create", OutcomeInvalid, time.Now())
	m.SetRecords(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations().WithLabelValues("create", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("create", OutcomeInvalid)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Records()))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "employee_records_operations_total")
	assert.Contains(t, names, "employee_records_total")
	assert.Contains(t, names, "employee_records_operation_seconds")
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.SetRecords(3)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Records()))
}
