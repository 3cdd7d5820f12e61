package dto

import "time"

// CreateAnnouncementRequest POST /avisos
type CreateAnnouncementRequest struct {
	Title    string `json:"titulo"   binding:"required"`
	Body     string `json:"conteudo" binding:"required"`
	Category string `json:"tipo"     binding:"omitempty,aviso_tipo"`
}

// AnnouncementResponse list item. Read is only set for students.
type AnnouncementResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"titulo"`
	Body       string    `json:"conteudo"`
	AuthorID   int64     `json:"autor_id"`
	AuthorName string    `json:"autor_nome"`
	Category   string    `json:"tipo"`
	CreatedAt  time.Time `json:"criado_em"`
	UpdatedAt  time.Time `json:"atualizado_em"`
	Active     bool      `json:"ativo"`
	Read       *bool     `json:"lido,omitempty"`
}

// AnnouncementListResponse GET /avisos
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"avisos"`
}

// UnreadCountResponse GET /avisos/nao-lidos
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
