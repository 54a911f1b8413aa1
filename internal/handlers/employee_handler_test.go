package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amrutha2803/employee-list/internal/employees"
	"github.com/Amrutha2803/employee-list/internal/notify"
	"github.com/Amrutha2803/employee-list/internal/records"
	"github.com/Amrutha2803/employee-list/internal/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine  *gin.Engine
	backend *memory.Backend
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	backend := memory.New()
	svc := employees.NewService(records.NewKVStore(backend, "", nil), &notify.Recorder{}, nil, nil)
	eh := NewEmployeeHandler(svc, records.NewPreferences(backend), nil)
	fh := NewFormHandler(svc.Validator())
	hh := NewHealthHandler(backend)

	r := gin.New()
	r.GET("/health", hh.Health)
	r.GET("/employees", eh.ListEmployees)
	r.GET("/employees/:id", eh.GetEmployeeByID)
	r.POST("/employees", eh.CreateEmployee)
	r.PUT("/employees", eh.UpdateEmployee)
	r.DELETE("/employees/:id", eh.DeleteEmployee)
	r.POST("/employees/validate", fh.ValidateStep)
	r.GET("/preferences", eh.GetPreferences)
	return testServer{engine: r, backend: backend}
}

func (s testServer) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func employeeBody(name, email string) map[string]any {
	return map[string]any{
		"name":       name,
		"emailId":    email,
		"contactNo":  "9876543210",
		"Pincode":    "560001",
		"Department": "IT",
		"city":       "Pune",
	}
}

func TestCreateAndGet(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/employees", employeeBody("Asha Rao", "asha@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, employees.MsgSaved, body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["empId"])

	w, body = s.do(t, http.MethodGet, "/employees/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha Rao", body["data"].(map[string]any)["name"])

	w, _ = s.do(t, http.MethodGet, "/employees/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateValidationFailure(t *testing.T) {
	s := newTestServer(t)

	in := employeeBody("Asha Rao", "asha@example.com")
	in["contactNo"] = "+91 12345"
	w, body := s.do(t, http.MethodPost, "/employees", in)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := body["fields"].(map[string]any)
	assert.Equal(t, []any{"invalidPhone"}, fields["contactNo"])
}

func TestListQueryParams(t *testing.T) {
	s := newTestServer(t)
	for _, n := range []string{"Ravi", "Asha", "Zoya", "Bala", "Meena", "Kiran"} {
		w, _ := s.do(t, http.MethodPost, "/employees", employeeBody(n, n+"@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, body := s.do(t, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(6), body["total"])
	assert.Equal(t, float64(2), body["total_pages"])
	assert.Len(t, body["data"], 5)

	w, body = s.do(t, http.MethodGet, "/employees?sort=name&order=desc&page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := body["data"].([]any)
	require.Len(t, items, 6)
	assert.Equal(t, "Zoya", items[0].(map[string]any)["name"])

	w, body = s.do(t, http.MethodGet, "/employees?q=asha", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])

	w, body = s.do(t, http.MethodGet, "/employees?page=9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["page"])

	w, _ = s.do(t, http.MethodGet, "/employees?page_size=7", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/employees?sort=salary", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateByEmail(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodPost, "/employees", employeeBody("Asha Rao", "asha@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := s.do(t, http.MethodPut, "/employees", map[string]any{"emailId": "asha@example.com", "city": "Mysuru"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["updated"])
	assert.Equal(t, "Mysuru", body["data"].(map[string]any)["city"])

	w, body = s.do(t, http.MethodPut, "/employees", map[string]any{"emailId": "nobody@example.com", "city": "X"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["updated"])

	w, _ = s.do(t, http.MethodPut, "/employees", map[string]any{"city": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(t, http.MethodPost, "/employees", employeeBody("Asha Rao", "asha@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := s.do(t, http.MethodDelete, "/employees/1", nil)
	require.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Equal(t, deletePrompt, body["prompt"])

	w, body = s.do(t, http.MethodDelete, "/employees/1?confirm=true&dont_ask_again=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["deleted"])

	// the next delete still asks
	w, _ = s.do(t, http.MethodDelete, "/employees/1", nil)
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)

	w, body = s.do(t, http.MethodDelete, "/employees/1?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["deleted"])
}

func TestValidateStep(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/employees/validate?step=1", map[string]any{"name": "Asha Rao"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["valid"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "emailId")
	assert.NotContains(t, errs, "Pincode")

	w, body = s.do(t, http.MethodPost, "/employees/validate?step=2", map[string]any{"Pincode": "560001"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["valid"])

	w, _ = s.do(t, http.MethodPost, "/employees/validate?step=3", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreferencesAndHealth(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/preferences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["confirm_before_delete"])
	assert.Equal(t, true, body["delete_always_confirms"])

	require.NoError(t, s.backend.Put(context.Background(), records.ConfirmBeforeDeleteKey, []byte("false")))
	_, body = s.do(t, http.MethodGet, "/preferences", nil)
	assert.Equal(t, false, body["confirm_before_delete"])
	assert.Equal(t, true, body["delete_always_confirms"])

	w, body = s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}
