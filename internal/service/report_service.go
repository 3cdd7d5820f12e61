package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
)

var (
	ErrStudentIDRequired = errors.New("ID do aluno é necessário para admin/professor")
	ErrExportFailed      = errors.New("Falha ao gerar o arquivo")
)

// Report defaults for data not entered yet
const (
	DefaultProfessorName = "Não definido"
	DefaultFinalStatus   = "em andamento"
)

// ReportService academic records (read-only)
type ReportService interface {
	// GetReport students always get their own report and targetStudentID is
	// ignored; professors and admins must name the student.
	GetReport(ctx context.Context, identity model.Identity, targetStudentID *int64) (*dto.ReportResponse, error)
	// ExportReport same report as an xlsx workbook
	ExportReport(ctx context.Context, identity model.Identity, targetStudentID *int64) (*bytes.Buffer, string, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService creates a ReportService
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

func (s *reportService) GetReport(ctx context.Context, identity model.Identity, targetStudentID *int64) (*dto.ReportResponse, error) {
	student, err := s.resolveStudent(ctx, identity, targetStudentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Report.ListByStudent(ctx, student.ID)
	if err != nil {
		s.logger.Error("failed to load report", zap.Int64("student_id", student.ID), zap.Error(err))
		return nil, err
	}

	report := &dto.ReportResponse{
		StudentID:          student.ID,
		StudentName:        student.Name,
		RegistrationNumber: student.RegistrationNumber,
		Program:            student.Program,
		Courses:            make([]dto.ReportEntry, 0, len(rows)),
	}
	for _, r := range rows {
		report.Courses = append(report.Courses, reportEntry(r))
	}
	return report, nil
}

func (s *reportService) ExportReport(ctx context.Context, identity model.Identity, targetStudentID *int64) (*bytes.Buffer, string, error) {
	report, err := s.GetReport(ctx, identity, targetStudentID)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if err := writeReportWorkbook(buf, report); err != nil {
		s.logger.Error("failed to write report workbook", zap.Int64("student_id", report.StudentID), zap.Error(err))
		return nil, "", ErrExportFailed
	}

	filename := fmt.Sprintf("boletim_%s.xlsx", report.RegistrationNumber)
	return buf, filename, nil
}

func (s *reportService) resolveStudent(ctx context.Context, identity model.Identity, targetStudentID *int64) (*model.Student, error) {
	var (
		student *model.Student
		err     error
	)
	switch identity.Role {
	case model.RoleStudent:
		student, err = s.repo.Student.GetByUserID(ctx, identity.UserID)
	case model.RoleProfessor, model.RoleAdmin:
		if targetStudentID == nil {
			return nil, ErrStudentIDRequired
		}
		student, err = s.repo.Student.GetByID(ctx, *targetStudentID)
	default:
		return nil, ErrForbidden
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("failed to load student", zap.Int64("user_id", identity.UserID), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func reportEntry(r model.ReportRow) dto.ReportEntry {
	e := dto.ReportEntry{
		CourseID:      r.CourseID,
		CourseName:    r.CourseName,
		CreditHours:   r.CreditHours,
		ProfessorName: DefaultProfessorName,
		Term:          r.Term,
		Score1:        valueOrZero(r.Score1),
		Score2:        valueOrZero(r.Score2),
		Score3:        valueOrZero(r.Score3),
		FinalAverage:  valueOrZero(r.FinalAverage),
		FinalStatus:   DefaultFinalStatus,
	}
	if r.ProfessorName != nil {
		e.ProfessorName = *r.ProfessorName
	}
	if r.FinalStatus != nil {
		e.FinalStatus = *r.FinalStatus
	}
	return e
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
