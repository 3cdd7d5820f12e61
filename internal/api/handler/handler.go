package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/repository"
	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// Handler aggregate entry point for every handler
type Handler struct {
	Auth         *AuthHandler
	Registration *RegistrationHandler
	Report       *ReportHandler
	Announcement *AnnouncementHandler
}

// NewHandler builds the aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Registration: NewRegistrationHandler(svc.Registration),
		Report:       NewReportHandler(svc.Report),
		Announcement: NewAnnouncementHandler(svc.Announcement),
	}
}

// internalError 500 with the database diagnostic, when there is one, as details
func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	if detail := repository.ErrorDetail(err); detail != "" {
		response.InternalErrorWithDetails(c, detail)
		return
	}
	response.InternalError(c)
}
