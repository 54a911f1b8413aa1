package query

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Amrutha2803/employee-list/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ColumnSerial is the row-number column of the listing; it orders by empId.
const ColumnSerial = "srno"

var columns = map[string]func(models.Employee) string{
	"empid":       func(e models.Employee) string { return strconv.Itoa(e.EmpID) },
	"name":        func(e models.Employee) string { return e.Name },
	"gender":      func(e models.Employee) string { return e.Gender },
	"city":        func(e models.Employee) string { return e.City },
	"state":       func(e models.Employee) string { return e.State },
	"designation": func(e models.Employee) string { return e.Designation },
	"country":     func(e models.Employee) string { return e.Country },
	"emailid":     func(e models.Employee) string { return e.EmailID },
	"contactno":   func(e models.Employee) string { return e.ContactNo },
	"department":  func(e models.Employee) string { return e.Department },
	"address":     func(e models.Employee) string { return e.Address },
	"pincode":     func(e models.Employee) string { return e.Pincode },
}

// KnownColumn reports whether column names a sortable field. Lookup ignores case.
func KnownColumn(column string) bool {
	_, ok := columnValue(column)
	return ok
}

func columnValue(column string) (func(models.Employee) string, bool) {
	key := strings.ToLower(strings.TrimSpace(column))
	if key == ColumnSerial {
		key = "empid"
	}
	fn, ok := columns[key]
	return fn, ok
}

// SortState is the listing's current sort: the last clicked column and its direction.
type SortState struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// Toggle flips the direction when column is already the sort column and
// otherwise switches to column ascending.
func (s *SortState) Toggle(column string) {
	if s.Column == column {
		s.Ascending = !s.Ascending
		return
	}
	s.Column = column
	s.Ascending = true
}

// Sort returns a sorted copy of records. Values that both read as numbers compare
// numerically; anything else compares as trimmed lower-case text in natural order,
// so "emp2" sorts before "emp10". Unknown columns leave the order unchanged.
func Sort(records []models.Employee, column string, ascending bool) []models.Employee {
	out := slices.Clone(records)
	value, ok := columnValue(column)
	if !ok || len(out) < 2 {
		return out
	}

	dir := 1
	if !ascending {
		dir = -1
	}
	col := collate.New(language.Und, collate.Numeric)

	slices.SortStableFunc(out, func(a, b models.Employee) int {
		return compareValues(col, value(a), value(b)) * dir
	})
	return out
}

func compareValues(col *collate.Collator, va, vb string) int {
	na, okA := toNumber(va)
	nb, okB := toNumber(vb)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}

	sa := strings.ToLower(strings.TrimSpace(va))
	sb := strings.ToLower(strings.TrimSpace(vb))
	return col.CompareString(sa, sb)
}

// toNumber coerces a field the way a browser's Number() does: blank is zero,
// decimal and 0x/0o/0b literals parse, everything else is not a number.
func toNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' && c != 'e' && c != 'E' {
			return 0, false
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	return n, true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
