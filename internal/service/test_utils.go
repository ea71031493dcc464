package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tasklight/internal/models"
)

// in-memory repositories for service tests

type MockUserRepository struct {
	users     map[uuid.UUID]*models.User
	createErr error
	getErr    error
	mutex     sync.Mutex
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
			// same message shape the sqlite driver produces
			return errors.New("UNIQUE constraint failed: users")
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	user, exists := m.users[id]
	if !exists {
		return nil, sql.ErrNoRows
	}
	cp := *user
	return &cp, nil
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockUserRepository) FindTaken(ctx context.Context, username, email string) (*models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

type MockTaskRepository struct {
	tasks map[uuid.UUID]*models.Task
	mutex sync.Mutex
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{tasks: make(map[uuid.UUID]*models.Task)}
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var out []*models.Task
	for _, t := range m.tasks {
		if t.UserID == ownerID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockTaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	task, exists := m.tasks[id]
	if !exists || task.UserID != ownerID {
		return nil, sql.ErrNoRows
	}
	cp := *task
	return &cp, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *models.Task) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return false, nil
	}
	cp := *task
	m.tasks[task.ID] = &cp
	return true, nil
}

func (m *MockTaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	task, exists := m.tasks[id]
	if !exists || task.UserID != ownerID {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}
