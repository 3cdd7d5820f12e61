package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

// UserRepository account data access
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// DisplayNames resolves names across the student, professor and admin
	// profile tables. Users without a profile are absent from the map.
	DisplayNames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

type displayNameRow struct {
	ID   int64  `gorm:"column:id"`
	Name string `gorm:"column:nome"`
}

func (r *userRepo) DisplayNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []displayNameRow
	err := r.db.WithContext(ctx).
		Table("tb_usuarios AS u").
		Select("u.id, COALESCE(a.nome, p.nome, adm.nome) AS nome").
		Joins("LEFT JOIN tb_usr_alunos a ON a.usuario_id = u.id").
		Joins("LEFT JOIN tb_usr_professores p ON p.usuario_id = u.id").
		Joins("LEFT JOIN tb_usr_adm adm ON adm.usuario_id = u.id").
		Where("u.id IN ?", ids).
		Where("COALESCE(a.nome, p.nome, adm.nome) IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
