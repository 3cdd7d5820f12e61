package dto

// ── Registration ──

// RegisterStudentRequest POST /cadastro/aluno
type RegisterStudentRequest struct {
	Email              string `json:"email"     binding:"required"`
	Password           string `json:"senha"     binding:"required"`
	Name               string `json:"nome"      binding:"required"`
	RegistrationNumber string `json:"matricula" binding:"required"`
	Program            string `json:"curso"     binding:"required"`
}

// RegisterProfessorRequest POST /cadastro/professor
type RegisterProfessorRequest struct {
	Email         string  `json:"email" binding:"required"`
	Password      string  `json:"senha" binding:"required"`
	Name          string  `json:"nome"  binding:"required"`
	Title         *string `json:"titulacao"`
	YearsTeaching *int    `json:"tempo_docencia" binding:"omitempty,min=0"`
}

// RegisterAdminRequest used by the createadmin command
type RegisterAdminRequest struct {
	Email    string
	Password string
	Name     string
}

// RegisterCourseRequest POST /cadastro/disciplina
type RegisterCourseRequest struct {
	Name        string `json:"nome"          binding:"required"`
	CreditHours int    `json:"carga_horaria" binding:"required,gt=0"`
	ProfessorID int64  `json:"professor_id"  binding:"required,gt=0"`
}

// StudentResponse listing row
type StudentResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"nome"`
	RegistrationNumber string `json:"matricula"`
	Program            string `json:"curso"`
	Active             bool   `json:"ativo"`
}

// ProfessorResponse listing row
type ProfessorResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nome"`
	Title         *string `json:"titulacao"`
	YearsTeaching *int    `json:"tempo_docencia"`
}

// CourseResponse course with its professor's name
type CourseResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nome"`
	CreditHours   int     `json:"carga_horaria"`
	Active        bool    `json:"ativa"`
	ProfessorID   *int64  `json:"professor_id"`
	ProfessorName *string `json:"professor_nome"`
}
