package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

// CourseRepository course data access
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	ListWithProfessor(ctx context.Context) ([]model.CourseListing, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates a CourseRepository
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return translateError(r.db.WithContext(ctx).Create(course).Error)
}

func (r *courseRepo) ListWithProfessor(ctx context.Context) ([]model.CourseListing, error) {
	var courses []model.CourseListing
	err := r.db.WithContext(ctx).
		Table("tb_disciplinas AS d").
		Select("d.id, d.nome, d.carga_horaria, d.ativa, d.professor_id, p.nome AS professor_nome").
		Joins("LEFT JOIN tb_usr_professores p ON p.id = d.professor_id").
		Order("d.nome ASC").
		Scan(&courses).Error
	return courses, err
}
