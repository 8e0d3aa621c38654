package punch

import (
	"net/http"

	"github.com/pauldemian98/portal-rh/internal/shared/apperror"
	"github.com/pauldemian98/portal-rh/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Record registers one punch for the authenticated employee. 201 when
// the day's row was created, 200 when an existing row advanced.
func (h *Handler) Record(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	var req RecordPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		writeServiceError(c, mapped)
		return
	}

	resp, created, err := h.service.RecordPunch(c.Request.Context(), employeeID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

// Today lists the authenticated employee's punches for the current UTC
// day; empty list when nothing was punched yet.
func (h *Handler) Today(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.ListEventsForToday(c.Request.Context(), employeeID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// List returns the flat event sequence for ?start&end (inclusive).
func (h *Handler) List(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	start := c.Query("start")
	end := c.Query("end")

	resp, err := h.service.ListEvents(c.Request.Context(), employeeID, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
