package model

import "time"

// User login account; table tb_usuarios
type User struct {
	ID           int64     `gorm:"column:id;primaryKey"                    json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"column:senha_hash;not null"              json:"-"`
	Role         Role      `gorm:"column:tipo_usuario;type:varchar(20)"    json:"tipo_usuario"`
	CreatedAt    time.Time `gorm:"column:criado_em;autoCreateTime"         json:"criado_em"`
}

// TableName table name
func (User) TableName() string { return "tb_usuarios" }

// Student student profile; table tb_usr_alunos (1:1 with User)
type Student struct {
	ID                 int64  `gorm:"column:id;primaryKey"          json:"id"`
	UserID             int64  `gorm:"column:usuario_id;not null"    json:"usuario_id"`
	Name               string `gorm:"column:nome;not null"          json:"nome"`
	RegistrationNumber string `gorm:"column:matricula;not null"     json:"matricula"`
	Program            string `gorm:"column:curso;not null"         json:"curso"`
	Active             bool   `gorm:"column:ativo;not null;default:true" json:"ativo"`
}

// TableName table name
func (Student) TableName() string { return "tb_usr_alunos" }

// Professor professor profile; table tb_usr_professores (1:1 with User)
type Professor struct {
	ID            int64   `gorm:"column:id;primaryKey"       json:"id"`
	UserID        int64   `gorm:"column:usuario_id;not null" json:"usuario_id"`
	Name          string  `gorm:"column:nome;not null"       json:"nome"`
	Title         *string `gorm:"column:titulacao"           json:"titulacao"`
	YearsTeaching *int    `gorm:"column:tempo_docencia"      json:"tempo_docencia"`
}

// TableName table name
func (Professor) TableName() string { return "tb_usr_professores" }

// Admin administrator profile; table tb_usr_adm (1:1 with User)
type Admin struct {
	ID     int64  `gorm:"column:id;primaryKey"       json:"id"`
	UserID int64  `gorm:"column:usuario_id;not null" json:"usuario_id"`
	Name   string `gorm:"column:nome;not null"       json:"nome"`
}

// TableName table name
func (Admin) TableName() string { return "tb_usr_adm" }
