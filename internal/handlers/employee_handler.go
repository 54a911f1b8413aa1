package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Amrutha2803/employee-list/internal/apperror"
	"github.com/Amrutha2803/employee-list/internal/employees"
	"github.com/Amrutha2803/employee-list/internal/logger"
	"github.com/Amrutha2803/employee-list/internal/models"
	"github.com/Amrutha2803/employee-list/internal/query"
	"github.com/Amrutha2803/employee-list/internal/records"

	"github.com/gin-gonic/gin"
)

const deletePrompt = "Are you sure you want to delete this employee?"

type EmployeeHandler struct {
	svc   *employees.Service
	prefs *records.Preferences
	log   *logger.Logger
}

func NewEmployeeHandler(svc *employees.Service, prefs *records.Preferences, log *logger.Logger) *EmployeeHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeHandler{svc: svc, prefs: prefs, log: log}
}

// GET /employees?q=&sort=&order=asc|desc&page=&page_size=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	view := query.NewView()
	view.SetSearch(c.Query("q"))

	if col := c.Query("sort"); col != "" {
		if !query.KnownColumn(col) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort column", "details": col})
			return
		}
		order := strings.ToLower(c.DefaultQuery("order", "asc"))
		if order != "asc" && order != "desc" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must be asc or desc"})
			return
		}
		view.Sort = query.SortState{Column: col, Ascending: order == "asc"}
	}

	if v := c.Query("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a number"})
			return
		}
		if err := view.SetPageSize(size); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size", "details": err.Error()})
			return
		}
	}
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
			return
		}
		view.GoTo(page)
	}

	page, err := h.svc.List(c.Request.Context(), view)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":        page.Items,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"total_pages": page.TotalPages,
		"total":       page.Total,
		"pages":       page.Pages(),
		"sort":        view.Sort,
	})
}

// GET /employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": e})
}

// POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": e, "message": employees.MsgSaved})
}

// PUT /employees
// The record is located by emailId; absent fields are left unchanged.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var in models.Patch
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if strings.TrimSpace(in.EmailID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "emailId is required"})
		return
	}

	e, updated, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "data": e, "message": employees.MsgUpdated})
}

// DELETE /employees/:id?confirm=true
// Every delete must be confirmed; dont_ask_again is accepted and ignored.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"error":  "confirmation required",
			"prompt": deletePrompt,
			"id":     id,
		})
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusOK, gin.H{"deleted": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "message": employees.MsgDeleted})
}

// GET /preferences
func (h *EmployeeHandler) GetPreferences(c *gin.Context) {
	confirm, err := h.prefs.ConfirmBeforeDelete(c.Request.Context())
	if err != nil {
		h.log.Error("read preferences", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"confirm_before_delete":  confirm,
		"delete_always_confirms": employees.DeletesAlwaysConfirm,
	})
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a number"})
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandler) respondError(c *gin.Context, err error) {
	switch apperror.GetCode(err) {
	case apperror.CodeValidation:
		body := gin.H{"error": err.Error()}
		if fields := apperror.GetFields(err); fields != nil {
			body["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
	case apperror.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperror.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
