package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler /boletim endpoints
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport GET /boletim and GET /boletim/:alunoId
// ?formato=xlsx downloads the report as a workbook.
func (h *ReportHandler) GetReport(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	var target *int64
	if c.Param("alunoId") != "" {
		id, ok := parseIDParam(c, "alunoId", "ID do aluno inválido")
		if !ok {
			return
		}
		target = &id
	}

	if c.Query("formato") == "xlsx" {
		buf, filename, err := h.reportSvc.ExportReport(c.Request.Context(), identity, target)
		if err != nil {
			h.handleReportError(c, err)
			return
		}
		c.Header("Content-Description", "File Transfer")
		c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
		return
	}

	report, err := h.reportSvc.GetReport(c.Request.Context(), identity, target)
	if err != nil {
		h.handleReportError(c, err)
		return
	}
	response.OK(c, report)
}

func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentIDRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	default:
		internalError(c, err)
	}
}
