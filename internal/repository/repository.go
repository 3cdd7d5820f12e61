package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregate entry point for every repository
type Repository struct {
	User         UserRepository
	Student      StudentRepository
	Professor    ProfessorRepository
	Admin        AdminRepository
	Course       CourseRepository
	Report       ReportRepository
	Announcement AnnouncementRepository

	// Tx opens a transaction; nil inside a transaction (and in tests that
	// don't need one), in which case Transaction runs fn on the receiver.
	Tx TxRunner
}

// TxRunner runs fn with a Repository bound to a single transaction.
// Returning an error from fn rolls the transaction back.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx *Repository) error) error
}

// NewRepository builds the aggregate
func NewRepository(db *gorm.DB) *Repository {
	r := newRepos(db)
	r.Tx = &gormTxRunner{db: db}
	return r
}

func newRepos(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Student:      NewStudentRepo(db),
		Professor:    NewProfessorRepo(db),
		Admin:        NewAdminRepo(db),
		Course:       NewCourseRepo(db),
		Report:       NewReportRepo(db),
		Announcement: NewAnnouncementRepo(db),
	}
}

// Transaction runs fn atomically
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.Tx == nil {
		return fn(r)
	}
	return r.Tx.RunInTx(ctx, fn)
}

// ── gorm transaction runner ──

type gormTxRunner struct {
	db *gorm.DB
}

func (g *gormTxRunner) RunInTx(ctx context.Context, fn func(tx *Repository) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepos(tx))
	})
}
