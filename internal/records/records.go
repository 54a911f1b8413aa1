// Package records persists the employee collection as one JSON array under a
// single backend key and repairs whatever it finds there on the way in.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Amrutha2803/employee-list/internal/logger"
	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/storage"
)

const (
	DefaultKey  = "employeeData"
	SequenceKey = "employeeSeq"
)

type Store interface {
	Load(ctx context.Context) ([]models.Employee, error)
	SaveAll(ctx context.Context, records []models.Employee) error
}

var _ Store = (*KVStore)(nil)

type KVStore struct {
	backend storage.Backend
	key     string
	log     *logger.Logger
}

func NewKVStore(backend storage.Backend, key string, log *logger.Logger) *KVStore {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &KVStore{backend: backend, key: key, log: log.With("storage_key", key)}
}

// Load reads the whole collection. A missing key is an empty collection, and
// so is a value that is not a JSON array.
func (s *KVStore) Load(ctx context.Context) ([]models.Employee, error) {
	raw, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Employee{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	return s.decode(raw), nil
}

func (s *KVStore) SaveAll(ctx context.Context, records []models.Employee) error {
	if records == nil {
		records = []models.Employee{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

func (s *KVStore) decode(raw []byte) []models.Employee {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("stored collection is not a JSON array, starting empty", "error", err)
		return []models.Employee{}
	}

	out := make([]models.Employee, 0, len(entries))
	for i, entry := range entries {
		e, ok, repaired := decodeEntry(entry)
		if !ok {
			s.log.Warn("dropping stored entry that is not an object", "index", i)
			continue
		}
		if repaired {
			s.log.Warn("stored entry has no usable empId, using 0", "index", i)
		}
		out = append(out, e)
	}
	return out
}

// decodeEntry reads one array element field by field. Strings are taken as is,
// null becomes "", and numbers or booleans are kept as their JSON text.
func decodeEntry(raw json.RawMessage) (e models.Employee, ok bool, repaired bool) {
	var fields map[string]json.RawMessage
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return e, false, false
	}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return e, false, false
	}

	id, idOK := parseID(fields["empId"])
	e.EmpID = id

	e.Name = text(fields["name"])
	e.Gender = text(fields["gender"])
	e.City = text(fields["city"])
	e.State = text(fields["state"])
	e.Designation = text(fields["designation"])
	e.Country = text(fields["country"])
	e.EmailID = text(fields["emailId"])
	e.ContactNo = text(fields["contactNo"])
	e.Department = text(fields["Department"])
	e.Address = text(fields["Address"])
	e.Pincode = text(fields["Pincode"])

	return e, true, !idOK
}

// parseID accepts an integral JSON number or a string holding one.
func parseID(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return integral(n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return integral(f)
	}
	return 0, false
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func text(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" {
		return ""
	}
	// objects and arrays have no sensible text form
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}
