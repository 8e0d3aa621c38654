package report

import (
	"fmt"
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

// MySummary returns the authenticated employee's own daily summaries.
func (h *Handler) MySummary(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	resp, err := h.service.Summaries(c.Request.Context(), employeeID, c.Query("start"), c.Query("end"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Punches is the HR view: one employee when ?employee_id is given,
// otherwise the whole directory.
func (h *Handler) Punches(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	if target := c.Query("employee_id"); target != "" {
		resp, err := h.service.Summaries(c.Request.Context(), target, start, end)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.CompanySummaries(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Export streams the range as a file download. ?format=csv (default)
// or xlsx; ?employee_id defaults to the requester.
func (h *Handler) Export(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	target := c.Query("employee_id")
	if target == "" {
		target = c.GetString("employee_id")
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.service.ExportCSV(c.Request.Context(), target, start, end)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pontos_%s_%s.csv", start, end))
		c.Data(http.StatusOK, "text/csv", data)

	case "xlsx":
		data, err := h.service.ExportXLSX(c.Request.Context(), target, start, end)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pontos_%s_%s.xlsx", start, end))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	default:
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Formato de exportação inválido", nil)
	}
}
