package service

import (
	"bytes"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
)

var (
	ErrAnnouncementFieldsRequired = errors.New("Título e conteúdo são obrigatórios")
	ErrInvalidCategory            = errors.New("Tipo de aviso inválido")
	ErrAnnouncementNotFound       = errors.New("Aviso não encontrado")
	ErrStudentsOnly               = errors.New("Apenas alunos podem marcar avisos como lidos")
	ErrDeleteForbidden            = errors.New("Você não tem permissão para deletar este aviso")
)

// AnnouncementService broadcast messages with per-student read tracking
type AnnouncementService interface {
	Create(ctx context.Context, author model.Identity, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	List(ctx context.Context, requester model.Identity) (*dto.AnnouncementListResponse, error)
	MarkRead(ctx context.Context, requester model.Identity, announcementID int64) error
	CountUnread(ctx context.Context, requester model.Identity) (int64, error)
	// Delete archives the announcement; read receipts are kept
	Delete(ctx context.Context, requester model.Identity, announcementID int64) error
	// Calendar active announcements as an iCalendar feed
	Calendar(ctx context.Context) (*bytes.Buffer, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService creates an AnnouncementService
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, author model.Identity, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if !author.Role.CanPublish() {
		return nil, ErrForbidden
	}
	if blank(req.Title, req.Body) {
		return nil, ErrAnnouncementFieldsRequired
	}
	category, err := model.ParseCategory(req.Category)
	if err != nil {
		return nil, ErrInvalidCategory
	}

	a := &model.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: author.UserID,
		Category: category,
		State:    model.StateActive,
	}
	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("failed to create announcement", zap.Int64("author_id", author.UserID), zap.Error(err))
		return nil, err
	}

	resp := announcementResponse(a)
	return &resp, nil
}

func (s *announcementService) List(ctx context.Context, requester model.Identity) (*dto.AnnouncementListResponse, error) {
	out, err := s.listActive(ctx)
	if err != nil {
		return nil, err
	}

	// read flags are only computed for students
	if requester.Role == model.RoleStudent {
		read, err := s.readSet(ctx, requester.UserID)
		if err != nil {
			return nil, err
		}
		if read != nil {
			for i := range out {
				lido := read[out[i].ID]
				out[i].Read = &lido
			}
		}
	}
	return &dto.AnnouncementListResponse{Announcements: out}, nil
}

// listActive newest first, with author display names resolved
func (s *announcementService) listActive(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	list, err := s.repo.Announcement.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list announcements", zap.Error(err))
		return nil, err
	}

	authorIDs := make([]int64, 0, len(list))
	seen := make(map[int64]bool, len(list))
	for _, a := range list {
		if !seen[a.AuthorID] {
			seen[a.AuthorID] = true
			authorIDs = append(authorIDs, a.AuthorID)
		}
	}
	names, err := s.repo.User.DisplayNames(ctx, authorIDs)
	if err != nil {
		s.logger.Error("failed to resolve author names", zap.Error(err))
		return nil, err
	}

	out := make([]dto.AnnouncementResponse, 0, len(list))
	for i := range list {
		resp := announcementResponse(&list[i])
		resp.AuthorName = names[list[i].AuthorID]
		out = append(out, resp)
	}
	return out, nil
}

// readSet nil when the student has no profile
func (s *announcementService) readSet(ctx context.Context, userID int64) (map[int64]bool, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to load student", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	read, err := s.repo.Announcement.ReadIDs(ctx, student.ID)
	if err != nil {
		s.logger.Error("failed to load read receipts", zap.Int64("student_id", student.ID), zap.Error(err))
		return nil, err
	}
	return read, nil
}

func (s *announcementService) MarkRead(ctx context.Context, requester model.Identity, announcementID int64) error {
	if requester.Role != model.RoleStudent {
		return ErrStudentsOnly
	}

	student, err := s.repo.Student.GetByUserID(ctx, requester.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("failed to load student", zap.Int64("user_id", requester.UserID), zap.Error(err))
		return err
	}

	if _, err := s.activeAnnouncement(ctx, announcementID); err != nil {
		return err
	}

	if err := s.repo.Announcement.MarkRead(ctx, announcementID, student.ID); err != nil {
		s.logger.Error("failed to mark announcement read",
			zap.Int64("announcement_id", announcementID),
			zap.Int64("student_id", student.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *announcementService) CountUnread(ctx context.Context, requester model.Identity) (int64, error) {
	if requester.Role != model.RoleStudent {
		return 0, nil
	}

	student, err := s.repo.Student.GetByUserID(ctx, requester.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		s.logger.Error("failed to load student", zap.Int64("user_id", requester.UserID), zap.Error(err))
		return 0, err
	}

	count, err := s.repo.Announcement.CountUnread(ctx, student.ID)
	if err != nil {
		s.logger.Error("failed to count unread announcements", zap.Int64("student_id", student.ID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *announcementService) Delete(ctx context.Context, requester model.Identity, announcementID int64) error {
	a, err := s.activeAnnouncement(ctx, announcementID)
	if err != nil {
		return err
	}

	switch requester.Role {
	case model.RoleAdmin:
	case model.RoleProfessor, model.RoleStudent:
		if a.AuthorID != requester.UserID {
			return ErrDeleteForbidden
		}
	default:
		return ErrDeleteForbidden
	}

	if err := s.repo.Announcement.Archive(ctx, announcementID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("failed to archive announcement", zap.Int64("announcement_id", announcementID), zap.Error(err))
		return err
	}

	s.logger.Info("announcement archived",
		zap.Int64("announcement_id", announcementID),
		zap.Int64("by_user_id", requester.UserID),
	)
	return nil
}

func (s *announcementService) Calendar(ctx context.Context) (*bytes.Buffer, error) {
	list, err := s.listActive(ctx)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := writeAnnouncementCalendar(buf, list); err != nil {
		s.logger.Error("failed to write announcement calendar", zap.Error(err))
		return nil, ErrExportFailed
	}
	return buf, nil
}

func (s *announcementService) activeAnnouncement(ctx context.Context, id int64) (*model.Announcement, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("failed to load announcement", zap.Int64("announcement_id", id), zap.Error(err))
		return nil, err
	}
	if !a.IsActive() {
		return nil, ErrAnnouncementNotFound
	}
	return a, nil
}

func announcementResponse(a *model.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		AuthorID:  a.AuthorID,
		Category:  string(a.Category),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Active:    a.IsActive(),
	}
}
