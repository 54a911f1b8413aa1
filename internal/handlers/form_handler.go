package handlers

import (
	"net/http"
	"strconv"

	"github.com/Amrutha2803/employee-list/internal/form"
	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/validation"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	validator *validation.Validator
}

func NewFormHandler(v *validation.Validator) *FormHandler {
	return &FormHandler{validator: v}
}

// POST /employees/validate?step=1|2
// Without step the whole form is checked.
func (h *FormHandler) ValidateStep(c *gin.Context) {
	var in models.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var errs validation.FieldErrors
	step := c.Query("step")
	if step == "" {
		errs = h.validator.Validate(in)
	} else {
		n, err := strconv.Atoi(step)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a number"})
			return
		}
		fields, err := form.StepFields(n)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step", "details": err.Error()})
			return
		}
		errs = h.validator.ValidateFields(in, fields...)
	}

	if errs == nil {
		errs = validation.FieldErrors{}
	}
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}
