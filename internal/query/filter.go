package query

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Amrutha2803/employee-list/internal/models"
)

// Filter keeps the records whose name, empId, Department or city contains term,
// ignoring case. An empty term keeps everything in its original order.
func Filter(records []models.Employee, term string) []models.Employee {
	key := strings.ToLower(term)
	if key == "" {
		return slices.Clone(records)
	}

	out := make([]models.Employee, 0, len(records))
	for _, e := range records {
		if strings.Contains(strings.ToLower(e.Name), key) ||
			strings.Contains(strconv.Itoa(e.EmpID), key) ||
			strings.Contains(strings.ToLower(e.Department), key) ||
			strings.Contains(strings.ToLower(e.City), key) {
			out = append(out, e)
		}
	}
	return out
}
