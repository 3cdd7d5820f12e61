package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/response"
)

// RegistrationHandler /cadastro endpoints
type RegistrationHandler struct {
	regSvc service.RegistrationService
}

// NewRegistrationHandler creates a RegistrationHandler
func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

// RegisterStudent POST /cadastro/aluno
func (h *RegistrationHandler) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrStudentFieldsRequired.Error())
		return
	}

	if _, err := h.regSvc.RegisterStudent(c.Request.Context(), &req); err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.Created(c, response.MessageBody{Message: "Aluno cadastrado com sucesso"})
}

// RegisterProfessor POST /cadastro/professor
func (h *RegistrationHandler) RegisterProfessor(c *gin.Context) {
	var req dto.RegisterProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrAccountFieldsRequired.Error())
		return
	}

	if _, err := h.regSvc.RegisterProfessor(c.Request.Context(), &req); err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.Created(c, response.MessageBody{Message: "Professor cadastrado com sucesso"})
}

// RegisterCourse POST /cadastro/disciplina (professor/admin)
func (h *RegistrationHandler) RegisterCourse(c *gin.Context) {
	var req dto.RegisterCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrCourseFieldsRequired.Error())
		return
	}

	course, err := h.regSvc.RegisterCourse(c.Request.Context(), &req)
	if err != nil {
		h.handleRegistrationError(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Disciplina cadastrada com sucesso", "disciplina": course})
}

// ListStudents GET /cadastro/alunos
func (h *RegistrationHandler) ListStudents(c *gin.Context) {
	students, err := h.regSvc.ListStudents(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, students)
}

// ListProfessors GET /cadastro/professores
func (h *RegistrationHandler) ListProfessors(c *gin.Context) {
	professors, err := h.regSvc.ListProfessors(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, professors)
}

// ListCourses GET /cadastro/disciplinas
func (h *RegistrationHandler) ListCourses(c *gin.Context) {
	courses, err := h.regSvc.ListCourses(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	response.OK(c, courses)
}

func (h *RegistrationHandler) handleRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentFieldsRequired),
		errors.Is(err, service.ErrAccountFieldsRequired),
		errors.Is(err, service.ErrCourseFieldsRequired),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateRegistrationNumber),
		errors.Is(err, service.ErrProfessorNotFound):
		response.BadRequest(c, err.Error())
	default:
		internalError(c, err)
	}
}
