package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/lucasroqe/PDM-App-School/internal/model"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
)

// ── In-memory store shared by every mock repository ──

type receiptKey struct {
	announcementID int64
	studentID      int64
}

type memStore struct {
	nextID int64
	now    time.Time

	users         map[int64]*model.User
	students      map[int64]*model.Student
	professors    map[int64]*model.Professor
	admins        map[int64]*model.Admin
	courses       map[int64]*model.Course
	reportRows    map[int64][]model.ReportRow // key: student id
	announcements map[int64]*model.Announcement
	receipts      map[receiptKey]bool

	// skipPrechecks makes Exists* report false, as when a concurrent
	// registration commits between the check and the insert
	skipPrechecks bool
	// failures injected into the next matching call
	professorCreateErr error
}

func newMemStore() *memStore {
	return &memStore{
		now:           time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		users:         make(map[int64]*model.User),
		students:      make(map[int64]*model.Student),
		professors:    make(map[int64]*model.Professor),
		admins:        make(map[int64]*model.Admin),
		courses:       make(map[int64]*model.Course),
		reportRows:    make(map[int64][]model.ReportRow),
		announcements: make(map[int64]*model.Announcement),
		receipts:      make(map[receiptKey]bool),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// tick advances the clock so creation order is observable
func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

// clone deep-copies every table
func (s *memStore) clone() *memStore {
	c := *s
	c.users = make(map[int64]*model.User, len(s.users))
	for k, v := range s.users {
		cp := *v
		c.users[k] = &cp
	}
	c.students = make(map[int64]*model.Student, len(s.students))
	for k, v := range s.students {
		cp := *v
		c.students[k] = &cp
	}
	c.professors = make(map[int64]*model.Professor, len(s.professors))
	for k, v := range s.professors {
		cp := *v
		c.professors[k] = &cp
	}
	c.admins = make(map[int64]*model.Admin, len(s.admins))
	for k, v := range s.admins {
		cp := *v
		c.admins[k] = &cp
	}
	c.courses = make(map[int64]*model.Course, len(s.courses))
	for k, v := range s.courses {
		cp := *v
		c.courses[k] = &cp
	}
	c.reportRows = make(map[int64][]model.ReportRow, len(s.reportRows))
	for k, v := range s.reportRows {
		c.reportRows[k] = append([]model.ReportRow(nil), v...)
	}
	c.announcements = make(map[int64]*model.Announcement, len(s.announcements))
	for k, v := range s.announcements {
		cp := *v
		c.announcements[k] = &cp
	}
	c.receipts = make(map[receiptKey]bool, len(s.receipts))
	for k, v := range s.receipts {
		c.receipts[k] = v
	}
	return &c
}

// restore puts the tables back; ids and injected failures are left as they are
func (s *memStore) restore(snap *memStore) {
	s.users = snap.users
	s.students = snap.students
	s.professors = snap.professors
	s.admins = snap.admins
	s.courses = snap.courses
	s.reportRows = snap.reportRows
	s.announcements = snap.announcements
	s.receipts = snap.receipts
}

func uniqueViolation(constraint string) error {
	return &repository.UniqueViolationError{
		Constraint: constraint,
		Err:        errors.New("duplicate key value violates unique constraint"),
	}
}

// newMockRepository wires every mock repository to store, with a
// transaction runner that restores the snapshot on error.
func newMockRepository(store *memStore) (*repository.Repository, *mockTxRunner) {
	tx := &mockTxRunner{store: store}
	repo := mockRepos(store)
	repo.Tx = tx
	return repo, tx
}

func mockRepos(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:         &mockUserRepo{s: store},
		Student:      &mockStudentRepo{s: store},
		Professor:    &mockProfessorRepo{s: store},
		Admin:        &mockAdminRepo{s: store},
		Course:       &mockCourseRepo{s: store},
		Report:       &mockReportRepo{s: store},
		Announcement: &mockAnnouncementRepo{s: store},
	}
}

// ── Mock TxRunner ──

type mockTxRunner struct {
	store     *memStore
	commits   int
	rollbacks int
}

func (m *mockTxRunner) RunInTx(_ context.Context, fn func(tx *repository.Repository) error) error {
	snap := m.store.clone()
	if err := fn(mockRepos(m.store)); err != nil {
		m.store.restore(snap)
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	s *memStore
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.s.users {
		if u.Email == user.Email {
			return uniqueViolation(repository.ConstraintUserEmail)
		}
	}
	user.ID = m.s.id()
	user.CreatedAt = m.s.tick()
	cp := *user
	m.s.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.s.skipPrechecks {
		return false, nil
	}
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *mockUserRepo) DisplayNames(_ context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string)
	for _, id := range ids {
		for _, st := range m.s.students {
			if st.UserID == id {
				names[id] = st.Name
			}
		}
		for _, p := range m.s.professors {
			if p.UserID == id {
				names[id] = p.Name
			}
		}
		for _, a := range m.s.admins {
			if a.UserID == id {
				names[id] = a.Name
			}
		}
	}
	return names, nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	s *memStore
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	for _, st := range m.s.students {
		if st.RegistrationNumber == student.RegistrationNumber {
			return uniqueViolation(repository.ConstraintStudentRegistration)
		}
	}
	student.ID = m.s.id()
	cp := *student
	m.s.students[student.ID] = &cp
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if st, ok := m.s.students[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID int64) (*model.Student, error) {
	for _, st := range m.s.students {
		if st.UserID == userID {
			cp := *st
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) ExistsByRegistrationNumber(_ context.Context, number string) (bool, error) {
	if m.s.skipPrechecks {
		return false, nil
	}
	for _, st := range m.s.students {
		if st.RegistrationNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, st := range m.s.students {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Mock ProfessorRepository ──

type mockProfessorRepo struct {
	s *memStore
}

func (m *mockProfessorRepo) Create(_ context.Context, professor *model.Professor) error {
	if err := m.s.professorCreateErr; err != nil {
		m.s.professorCreateErr = nil
		return err
	}
	professor.ID = m.s.id()
	cp := *professor
	m.s.professors[professor.ID] = &cp
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id int64) (*model.Professor, error) {
	if p, ok := m.s.professors[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) GetByUserID(_ context.Context, userID int64) (*model.Professor, error) {
	for _, p := range m.s.professors {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) List(_ context.Context) ([]model.Professor, error) {
	var out []model.Professor
	for _, p := range m.s.professors {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	s *memStore
}

func (m *mockAdminRepo) Create(_ context.Context, admin *model.Admin) error {
	admin.ID = m.s.id()
	cp := *admin
	m.s.admins[admin.ID] = &cp
	return nil
}

func (m *mockAdminRepo) GetByUserID(_ context.Context, userID int64) (*model.Admin, error) {
	for _, a := range m.s.admins {
		if a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	s *memStore
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.ID = m.s.id()
	cp := *course
	m.s.courses[course.ID] = &cp
	return nil
}

func (m *mockCourseRepo) ListWithProfessor(_ context.Context) ([]model.CourseListing, error) {
	var out []model.CourseListing
	for _, c := range m.s.courses {
		row := model.CourseListing{
			ID:          c.ID,
			Name:        c.Name,
			CreditHours: c.CreditHours,
			Active:      c.Active,
			ProfessorID: c.ProfessorID,
		}
		if c.ProfessorID != nil {
			if p, ok := m.s.professors[*c.ProfessorID]; ok {
				name := p.Name
				row.ProfessorName = &name
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	s *memStore
}

func (m *mockReportRepo) ListByStudent(_ context.Context, studentID int64) ([]model.ReportRow, error) {
	rows := append([]model.ReportRow(nil), m.s.reportRows[studentID]...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Term != rows[j].Term {
			return rows[i].Term > rows[j].Term
		}
		return rows[i].CourseName < rows[j].CourseName
	})
	return rows, nil
}

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	s *memStore
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	a.ID = m.s.id()
	a.CreatedAt = m.s.tick()
	a.UpdatedAt = a.CreatedAt
	if a.State == "" {
		a.State = model.StateActive
	}
	cp := *a
	m.s.announcements[a.ID] = &cp
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id int64) (*model.Announcement, error) {
	if a, ok := m.s.announcements[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) ListActive(_ context.Context) ([]model.Announcement, error) {
	var out []model.Announcement
	for _, a := range m.s.announcements {
		if a.State == model.StateActive {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockAnnouncementRepo) Archive(_ context.Context, id int64) error {
	a, ok := m.s.announcements[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.State = model.StateArchived
	a.UpdatedAt = m.s.tick()
	return nil
}

func (m *mockAnnouncementRepo) MarkRead(_ context.Context, announcementID, studentID int64) error {
	m.s.receipts[receiptKey{announcementID, studentID}] = true
	return nil
}

func (m *mockAnnouncementRepo) ReadIDs(_ context.Context, studentID int64) (map[int64]bool, error) {
	read := make(map[int64]bool)
	for k := range m.s.receipts {
		if k.studentID == studentID {
			read[k.announcementID] = true
		}
	}
	return read, nil
}

func (m *mockAnnouncementRepo) CountUnread(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for _, a := range m.s.announcements {
		if a.State == model.StateActive && !m.s.receipts[receiptKey{a.ID, studentID}] {
			count++
		}
	}
	return count, nil
}

// ── Fixtures ──

func seedStudent(s *memStore, name, matricula string) (*model.User, *model.Student) {
	u := &model.User{ID: s.id(), Email: matricula + "@escola.br", Role: model.RoleStudent}
	s.users[u.ID] = u
	st := &model.Student{ID: s.id(), UserID: u.ID, Name: name, RegistrationNumber: matricula, Program: "Engenharia", Active: true}
	s.students[st.ID] = st
	return u, st
}

func seedProfessor(s *memStore, name string) (*model.User, *model.Professor) {
	u := &model.User{ID: s.id(), Email: name + "@escola.br", Role: model.RoleProfessor}
	s.users[u.ID] = u
	p := &model.Professor{ID: s.id(), UserID: u.ID, Name: name}
	s.professors[p.ID] = p
	return u, p
}

func seedAdmin(s *memStore, name string) (*model.User, *model.Admin) {
	u := &model.User{ID: s.id(), Email: name + "@escola.br", Role: model.RoleAdmin}
	s.users[u.ID] = u
	a := &model.Admin{ID: s.id(), UserID: u.ID, Name: name}
	s.admins[a.ID] = a
	return u, a
}

func identityOf(u *model.User) model.Identity {
	return model.Identity{UserID: u.ID, Role: u.Role}
}
