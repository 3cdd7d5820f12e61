package model

import (
	"fmt"
	"time"
)

// AnnouncementCategory values of tb_avisos.tipo
type AnnouncementCategory string

const (
	CategoryGeneral       AnnouncementCategory = "geral"
	CategoryReminder      AnnouncementCategory = "lembrete"
	CategoryInstitutional AnnouncementCategory = "institucional"
)

// ParseCategory empty input yields the default category
func ParseCategory(s string) (AnnouncementCategory, error) {
	if s == "" {
		return CategoryGeneral, nil
	}
	switch AnnouncementCategory(s) {
	case CategoryGeneral, CategoryReminder, CategoryInstitutional:
		return AnnouncementCategory(s), nil
	default:
		return "", fmt.Errorf("unknown announcement category %q", s)
	}
}

// AnnouncementState lifecycle of an announcement. Archived rows are never
// removed so read receipts keep pointing at them.
type AnnouncementState string

const (
	StateActive   AnnouncementState = "ativo"
	StateArchived AnnouncementState = "arquivado"
)

// Announcement table tb_avisos
type Announcement struct {
	ID        int64                `gorm:"column:id;primaryKey"           json:"id"`
	Title     string               `gorm:"column:titulo;not null"         json:"titulo"`
	Body      string               `gorm:"column:conteudo;not null"       json:"conteudo"`
	AuthorID  int64                `gorm:"column:autor_id;not null"       json:"autor_id"`
	Category  AnnouncementCategory `gorm:"column:tipo;type:varchar(20)"   json:"tipo"`
	State     AnnouncementState    `gorm:"column:estado;type:varchar(20)" json:"-"`
	CreatedAt time.Time            `gorm:"column:criado_em;autoCreateTime"     json:"criado_em"`
	UpdatedAt time.Time            `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizado_em"`
}

// TableName table name
func (Announcement) TableName() string { return "tb_avisos" }

// IsActive whether the announcement is still visible
func (a *Announcement) IsActive() bool {
	return a.State == StateActive
}

// ReadReceipt existence means the student has read the announcement; table tb_avisos_lidos
type ReadReceipt struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	AnnouncementID int64     `gorm:"column:aviso_id;not null"`
	StudentID      int64     `gorm:"column:aluno_id;not null"`
	ReadAt         time.Time `gorm:"column:lido_em;autoCreateTime"`
}

// TableName table name
func (ReadReceipt) TableName() string { return "tb_avisos_lidos" }
