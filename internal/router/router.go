package router

import (
	"github.com/Amrutha2803/employee-list/internal/employees"
	"github.com/Amrutha2803/employee-list/internal/handlers"
	"github.com/Amrutha2803/employee-list/internal/logger"
	"github.com/Amrutha2803/employee-list/internal/metrics"
	"github.com/Amrutha2803/employee-list/internal/middleware"
	"github.com/Amrutha2803/employee-list/internal/records"
	"github.com/Amrutha2803/employee-list/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Backend storage.Backend
	Service *employees.Service
	Prefs   *records.Preferences
	Metrics *metrics.Metrics
	Log     *logger.Logger
}

func Setup(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestLogger(d.Log), middleware.Metrics(d.Metrics))

	eh := handlers.NewEmployeeHandler(d.Service, d.Prefs, d.Log)
	fh := handlers.NewFormHandler(d.Service.Validator())
	hh := handlers.NewHealthHandler(d.Backend)

	// health
	r.GET("/health", hh.Health)
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	r.GET("/employees", eh.ListEmployees)
	r.GET("/employees/:id", eh.GetEmployeeByID)
	r.POST("/employees", eh.CreateEmployee)
	r.PUT("/employees", eh.UpdateEmployee)
	r.DELETE("/employees/:id", eh.DeleteEmployee)
	r.POST("/employees/validate", fh.ValidateStep)

	r.GET("/preferences", eh.GetPreferences)
}
