package dto

// ReportResponse GET /boletim[/:alunoId]
type ReportResponse struct {
	StudentID          int64         `json:"aluno_id"`
	StudentName        string        `json:"aluno_nome"`
	RegistrationNumber string        `json:"matricula"`
	Program            string        `json:"curso"`
	Courses            []ReportEntry `json:"disciplinas"`
}

// ReportEntry one enrollment, defaults already applied
type ReportEntry struct {
	CourseID      int64   `json:"disciplina_id"`
	CourseName    string  `json:"disciplina_nome"`
	CreditHours   int     `json:"carga_horaria"`
	ProfessorName string  `json:"professor_nome"`
	Term          string  `json:"ano_semestre"`
	Score1        float64 `json:"nota1"`
	Score2        float64 `json:"nota2"`
	Score3        float64 `json:"nota3"`
	FinalAverage  float64 `json:"media_final"`
	FinalStatus   string  `json:"situacao_final"`
}
