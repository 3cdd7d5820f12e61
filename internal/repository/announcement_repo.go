package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

// AnnouncementRepository announcement and read receipt data access
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id int64) (*model.Announcement, error)
	// ListActive newest first
	ListActive(ctx context.Context) ([]model.Announcement, error)
	Archive(ctx context.Context, id int64) error
	// MarkRead inserts the receipt; an existing one is left untouched.
	MarkRead(ctx context.Context, announcementID, studentID int64) error
	// ReadIDs ids of the announcements the student has a receipt for
	ReadIDs(ctx context.Context, studentID int64) (map[int64]bool, error)
	CountUnread(ctx context.Context, studentID int64) (int64, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo creates an AnnouncementRepository
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	if a.State == "" {
		a.State = model.StateActive
	}
	return translateError(r.db.WithContext(ctx).Create(a).Error)
}

func (r *announcementRepo) GetByID(ctx context.Context, id int64) (*model.Announcement, error) {
	var a model.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) ListActive(ctx context.Context) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.StateActive).
		Order("criado_em DESC, id DESC").
		Find(&list).Error
	return list, err
}

func (r *announcementRepo) Archive(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Announcement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":        model.StateArchived,
			"atualizado_em": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *announcementRepo) MarkRead(ctx context.Context, announcementID, studentID int64) error {
	receipt := &model.ReadReceipt{AnnouncementID: announcementID, StudentID: studentID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "aviso_id"}, {Name: "aluno_id"}},
			DoNothing: true,
		}).
		Create(receipt).Error
	return translateError(err)
}

func (r *announcementRepo) ReadIDs(ctx context.Context, studentID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.ReadReceipt{}).
		Where("aluno_id = ?", studentID).
		Pluck("aviso_id", &ids).Error
	if err != nil {
		return nil, err
	}
	read := make(map[int64]bool, len(ids))
	for _, id := range ids {
		read[id] = true
	}
	return read, nil
}

func (r *announcementRepo) CountUnread(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tb_avisos AS a").
		Joins("LEFT JOIN tb_avisos_lidos l ON l.aviso_id = a.id AND l.aluno_id = ?", studentID).
		Where("a.estado = ? AND l.id IS NULL", model.StateActive).
		Count(&count).Error
	return count, err
}
