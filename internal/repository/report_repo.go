package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

// ReportRepository read-only academic record queries
type ReportRepository interface {
	// ListByStudent one row per enrollment, term descending then course name.
	// Grade and professor columns are NULL when absent.
	ListByStudent(ctx context.Context, studentID int64) ([]model.ReportRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) ListByStudent(ctx context.Context, studentID int64) ([]model.ReportRow, error) {
	var rows []model.ReportRow
	err := r.db.WithContext(ctx).
		Table("tb_matriculas AS m").
		Select(`d.id AS disciplina_id, d.nome AS disciplina_nome, d.carga_horaria,
			p.nome AS professor_nome, m.ano_semestre, m.situacao,
			n.nota1, n.nota2, n.nota3, n.media_final, n.situacao_final`).
		Joins("JOIN tb_disciplinas d ON d.id = m.disciplina_id").
		Joins("LEFT JOIN tb_usr_professores p ON p.id = d.professor_id").
		Joins("LEFT JOIN tb_notas n ON n.matricula_id = m.id").
		Where("m.aluno_id = ?", studentID).
		Order("m.ano_semestre DESC, d.nome ASC").
		Scan(&rows).Error
	return rows, err
}
