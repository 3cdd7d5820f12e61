package model

// Course table tb_disciplinas
type Course struct {
	ID          int64  `gorm:"column:id;primaryKey"            json:"id"`
	Name        string `gorm:"column:nome;not null"            json:"nome"`
	CreditHours int    `gorm:"column:carga_horaria;not null"   json:"carga_horaria"`
	ProfessorID *int64 `gorm:"column:professor_id"             json:"professor_id"`
	Active      bool   `gorm:"column:ativa;not null;default:true" json:"ativa"`
}

// TableName table name
func (Course) TableName() string { return "tb_disciplinas" }

// CourseListing course joined with its professor's name
type CourseListing struct {
	ID            int64   `gorm:"column:id"             json:"id"`
	Name          string  `gorm:"column:nome"           json:"nome"`
	CreditHours   int     `gorm:"column:carga_horaria"  json:"carga_horaria"`
	Active        bool    `gorm:"column:ativa"          json:"ativa"`
	ProfessorID   *int64  `gorm:"column:professor_id"   json:"professor_id"`
	ProfessorName *string `gorm:"column:professor_nome" json:"professor_nome"`
}

// Enrollment student ↔ course for one term; table tb_matriculas
type Enrollment struct {
	ID        int64  `gorm:"column:id;primaryKey"      json:"id"`
	StudentID int64  `gorm:"column:aluno_id;not null"  json:"aluno_id"`
	CourseID  int64  `gorm:"column:disciplina_id;not null" json:"disciplina_id"`
	Term      string `gorm:"column:ano_semestre;not null"  json:"ano_semestre"`
	Status    string `gorm:"column:situacao;not null"      json:"situacao"`
}

// TableName table name
func (Enrollment) TableName() string { return "tb_matriculas" }

// Grade scores of one enrollment; table tb_notas. Rows are optional; a missing
// row means the enrollment is still in progress.
type Grade struct {
	ID           int64    `gorm:"column:id;primaryKey"            json:"id"`
	EnrollmentID int64    `gorm:"column:matricula_id;not null"    json:"matricula_id"`
	Score1       *float64 `gorm:"column:nota1"                    json:"nota1"`
	Score2       *float64 `gorm:"column:nota2"                    json:"nota2"`
	Score3       *float64 `gorm:"column:nota3"                    json:"nota3"`
	FinalAverage *float64 `gorm:"column:media_final"              json:"media_final"`
	FinalStatus  *string  `gorm:"column:situacao_final"           json:"situacao_final"`
}

// TableName table name
func (Grade) TableName() string { return "tb_notas" }

// ReportRow one enrollment of a report with everything nullable still raw
type ReportRow struct {
	CourseID      int64    `gorm:"column:disciplina_id"`
	CourseName    string   `gorm:"column:disciplina_nome"`
	CreditHours   int      `gorm:"column:carga_horaria"`
	ProfessorName *string  `gorm:"column:professor_nome"`
	Term          string   `gorm:"column:ano_semestre"`
	Status        string   `gorm:"column:situacao"`
	Score1        *float64 `gorm:"column:nota1"`
	Score2        *float64 `gorm:"column:nota2"`
	Score3        *float64 `gorm:"column:nota3"`
	FinalAverage  *float64 `gorm:"column:media_final"`
	FinalStatus   *string  `gorm:"column:situacao_final"`
}
