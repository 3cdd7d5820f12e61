package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

// ── Student ──

// StudentRepository student profile data access
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Student, error)
	ExistsByRegistrationNumber(ctx context.Context, number string) (bool, error)
	List(ctx context.Context) ([]model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return translateError(r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var s model.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID int64) (*model.Student, error) {
	var s model.Student
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) ExistsByRegistrationNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Student{}).
		Where("matricula = ?", number).
		Count(&count).Error
	return count > 0, err
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&students).Error
	return students, err
}

// ── Professor ──

// ProfessorRepository professor profile data access
type ProfessorRepository interface {
	Create(ctx context.Context, professor *model.Professor) error
	GetByID(ctx context.Context, id int64) (*model.Professor, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
}

type professorRepo struct {
	db *gorm.DB
}

// NewProfessorRepo creates a ProfessorRepository
func NewProfessorRepo(db *gorm.DB) ProfessorRepository {
	return &professorRepo{db: db}
}

func (r *professorRepo) Create(ctx context.Context, professor *model.Professor) error {
	return translateError(r.db.WithContext(ctx).Create(professor).Error)
}

func (r *professorRepo) GetByID(ctx context.Context, id int64) (*model.Professor, error) {
	var p model.Professor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professorRepo) GetByUserID(ctx context.Context, userID int64) (*model.Professor, error) {
	var p model.Professor
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professorRepo) List(ctx context.Context) ([]model.Professor, error) {
	var professors []model.Professor
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&professors).Error
	return professors, err
}

// ── Admin ──

// AdminRepository admin profile data access
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByUserID(ctx context.Context, userID int64) (*model.Admin, error)
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo creates an AdminRepository
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) Create(ctx context.Context, admin *model.Admin) error {
	return translateError(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *adminRepo) GetByUserID(ctx context.Context, userID int64) (*model.Admin, error) {
	var a model.Admin
	if err := r.db.WithContext(ctx).Where("usuario_id = ?", userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
