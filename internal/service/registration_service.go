package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
)

var (
	ErrStudentFieldsRequired       = errors.New("Todos os campos são obrigatórios")
	ErrAccountFieldsRequired       = errors.New("Email, senha e nome são obrigatórios")
	ErrCourseFieldsRequired        = errors.New("Nome, carga horária e professor são obrigatórios")
	ErrDuplicateEmail              = errors.New("Email já cadastrado")
	ErrDuplicateRegistrationNumber = errors.New("Matrícula já cadastrada")
	ErrProfessorNotFound           = errors.New("Professor não encontrado")
)

// RegistrationService account, profile and course registration
type RegistrationService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error)
	RegisterProfessor(ctx context.Context, req *dto.RegisterProfessorRequest) (int64, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error)
	RegisterCourse(ctx context.Context, req *dto.RegisterCourseRequest) (*dto.CourseResponse, error)
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
	ListProfessors(ctx context.Context) ([]dto.ProfessorResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
}

type registrationService struct {
	repo       *repository.Repository
	bcryptCost int
	logger     *zap.Logger
}

// NewRegistrationService creates a RegistrationService
func NewRegistrationService(repo *repository.Repository, bcryptCost int, logger *zap.Logger) RegistrationService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &registrationService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// account is what every role's registration has in common
type account struct {
	email    string
	password string
	role     model.Role
	// precheck runs after the email check, inside the transaction
	precheck func(tx *repository.Repository) error
	// profile inserts the role profile for the new user id
	profile func(tx *repository.Repository, userID int64) error
}

// register creates the user and its profile in one transaction. Duplicates
// are detected up front and again via the unique constraints, since two
// concurrent requests can both pass the pre-check.
func (s *registrationService) register(ctx context.Context, acc account) (int64, error) {
	var userID int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		taken, err := tx.User.ExistsByEmail(ctx, acc.email)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}

		if acc.precheck != nil {
			if err := acc.precheck(tx); err != nil {
				return err
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user := &model.User{Email: acc.email, PasswordHash: string(hash), Role: acc.role}
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		if err := acc.profile(tx, user.ID); err != nil {
			return err
		}

		userID = user.ID
		return nil
	})
	if err != nil {
		return 0, s.registrationError(acc, err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", userID), zap.String("role", string(acc.role)))
	return userID, nil
}

func (s *registrationService) registrationError(acc account, err error) error {
	switch {
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateRegistrationNumber):
		return err
	case repository.IsUniqueViolation(err, repository.ConstraintUserEmail):
		return ErrDuplicateEmail
	case repository.IsUniqueViolation(err, repository.ConstraintStudentRegistration):
		return ErrDuplicateRegistrationNumber
	}
	s.logger.Error("registration failed", zap.String("role", string(acc.role)), zap.Error(err))
	return fmt.Errorf("register %s: %w", acc.role, err)
}

func (s *registrationService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (int64, error) {
	if blank(req.Email, req.Password, req.Name, req.RegistrationNumber, req.Program) {
		return 0, ErrStudentFieldsRequired
	}

	return s.register(ctx, account{
		email:    req.Email,
		password: req.Password,
		role:     model.RoleStudent,
		precheck: func(tx *repository.Repository) error {
			taken, err := tx.Student.ExistsByRegistrationNumber(ctx, req.RegistrationNumber)
			if err != nil {
				return err
			}
			if taken {
				return ErrDuplicateRegistrationNumber
			}
			return nil
		},
		profile: func(tx *repository.Repository, userID int64) error {
			return tx.Student.Create(ctx, &model.Student{
				UserID:             userID,
				Name:               req.Name,
				RegistrationNumber: req.RegistrationNumber,
				Program:            req.Program,
				Active:             true,
			})
		},
	})
}

func (s *registrationService) RegisterProfessor(ctx context.Context, req *dto.RegisterProfessorRequest) (int64, error) {
	if blank(req.Email, req.Password, req.Name) {
		return 0, ErrAccountFieldsRequired
	}

	return s.register(ctx, account{
		email:    req.Email,
		password: req.Password,
		role:     model.RoleProfessor,
		profile: func(tx *repository.Repository, userID int64) error {
			return tx.Professor.Create(ctx, &model.Professor{
				UserID:        userID,
				Name:          req.Name,
				Title:         req.Title,
				YearsTeaching: req.YearsTeaching,
			})
		},
	})
}

func (s *registrationService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (int64, error) {
	if blank(req.Email, req.Password, req.Name) {
		return 0, ErrAccountFieldsRequired
	}

	return s.register(ctx, account{
		email:    req.Email,
		password: req.Password,
		role:     model.RoleAdmin,
		profile: func(tx *repository.Repository, userID int64) error {
			return tx.Admin.Create(ctx, &model.Admin{UserID: userID, Name: req.Name})
		},
	})
}

func (s *registrationService) RegisterCourse(ctx context.Context, req *dto.RegisterCourseRequest) (*dto.CourseResponse, error) {
	if blank(req.Name) || req.CreditHours <= 0 || req.ProfessorID <= 0 {
		return nil, ErrCourseFieldsRequired
	}

	professor, err := s.repo.Professor.GetByID(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		s.logger.Error("failed to load professor", zap.Int64("professor_id", req.ProfessorID), zap.Error(err))
		return nil, err
	}

	course := &model.Course{
		Name:        req.Name,
		CreditHours: req.CreditHours,
		ProfessorID: &professor.ID,
		Active:      true,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("failed to create course", zap.Error(err))
		return nil, err
	}

	return &dto.CourseResponse{
		ID:            course.ID,
		Name:          course.Name,
		CreditHours:   course.CreditHours,
		Active:        course.Active,
		ProfessorID:   course.ProfessorID,
		ProfessorName: &professor.Name,
	}, nil
}

func (s *registrationService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("failed to list students", zap.Error(err))
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, dto.StudentResponse{
			ID:                 st.ID,
			Name:               st.Name,
			RegistrationNumber: st.RegistrationNumber,
			Program:            st.Program,
			Active:             st.Active,
		})
	}
	return out, nil
}

func (s *registrationService) ListProfessors(ctx context.Context) ([]dto.ProfessorResponse, error) {
	professors, err := s.repo.Professor.List(ctx)
	if err != nil {
		s.logger.Error("failed to list professors", zap.Error(err))
		return nil, err
	}
	out := make([]dto.ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, dto.ProfessorResponse{
			ID:            p.ID,
			Name:          p.Name,
			Title:         p.Title,
			YearsTeaching: p.YearsTeaching,
		})
	}
	return out, nil
}

func (s *registrationService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.ListWithProfessor(ctx)
	if err != nil {
		s.logger.Error("failed to list courses", zap.Error(err))
		return nil, err
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseResponse{
			ID:            c.ID,
			Name:          c.Name,
			CreditHours:   c.CreditHours,
			Active:        c.Active,
			ProfessorID:   c.ProfessorID,
			ProfessorName: c.ProfessorName,
		})
	}
	return out, nil
}

// blank reports whether any value is empty after trimming
func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
