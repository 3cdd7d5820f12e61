package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// AnnouncementHandler /avisos endpoints
type AnnouncementHandler struct {
	annSvc service.AnnouncementService
}

// NewAnnouncementHandler creates an AnnouncementHandler
func NewAnnouncementHandler(annSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc}
}

// Create POST /avisos (professor/admin)
func (h *AnnouncementHandler) Create(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if failedTag(err, "Category", "aviso_tipo") {
			response.BadRequest(c, service.ErrInvalidCategory.Error())
			return
		}
		response.BadRequest(c, service.ErrAnnouncementFieldsRequired.Error())
		return
	}

	a, err := h.annSvc.Create(c.Request.Context(), identity, &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Aviso criado com sucesso", "aviso": a})
}

// List GET /avisos
func (h *AnnouncementHandler) List(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	list, err := h.annSvc.List(c.Request.Context(), identity)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}
	response.OK(c, list)
}

// CountUnread GET /avisos/nao-lidos
func (h *AnnouncementHandler) CountUnread(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}

	count, err := h.annSvc.CountUnread(c.Request.Context(), identity)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}
	response.OK(c, dto.UnreadCountResponse{Count: count})
}

// MarkRead POST /avisos/:id/lido (students)
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "ID do aviso inválido")
	if !ok {
		return
	}

	if err := h.annSvc.MarkRead(c.Request.Context(), identity, id); err != nil {
		h.handleAnnouncementError(c, err)
		return
	}
	response.Message(c, "Aviso marcado como lido")
}

// Delete DELETE /avisos/:id (author or admin)
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	identity, ok := MustGetIdentity(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "ID do aviso inválido")
	if !ok {
		return
	}

	if err := h.annSvc.Delete(c.Request.Context(), identity, id); err != nil {
		h.handleAnnouncementError(c, err)
		return
	}
	response.Message(c, "Aviso deletado com sucesso")
}

// Calendar GET /avisos/calendario
func (h *AnnouncementHandler) Calendar(c *gin.Context) {
	buf, err := h.annSvc.Calendar(c.Request.Context())
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=avisos.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func (h *AnnouncementHandler) handleAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementFieldsRequired),
		errors.Is(err, service.ErrInvalidCategory):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrStudentsOnly),
		errors.Is(err, service.ErrDeleteForbidden),
		errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrAnnouncementNotFound),
		errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, err.Error())
	default:
		internalError(c, err)
	}
}
