package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tasklight/internal/db"
	"tasklight/internal/models"
)

const maxTitleLen = 200

// TaskService performs ownership-scoped CRUD. Existence and ownership are
// always checked together: a task owned by someone else reports not found.
type TaskService struct {
	tasks db.TaskRepositoryInterface
}

func NewTaskService(tasks db.TaskRepositoryInterface) *TaskService {
	return &TaskService{tasks: tasks}
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title    *string
	Priority *string
	Status   *string
}

func (s *TaskService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("List tasks: %v", err)
		return nil, ErrInternal
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, title, priority, status string) (*models.Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, fmt.Errorf("%w: task title cannot exceed 200 characters", ErrValidation)
	}

	p := models.TaskPriorityLow
	if priority != "" {
		p = models.TaskPriority(priority)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: invalid priority level", ErrValidation)
		}
	}
	st := models.TaskStatusPending
	if status != "" {
		st = models.TaskStatus(status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: invalid status", ErrValidation)
		}
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     title,
		Status:    st,
		Priority:  p,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		log.Printf("Create task: %v", err)
		return nil, ErrInternal
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*models.Task, error) {
	if ownerID == uuid.Nil {
		return nil, ErrAuthRequired
	}
	task, err := s.tasks.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %w", ErrNotFound)
		}
		log.Printf("Get task: %v", err)
		return nil, ErrInternal
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, upd TaskUpdate) (*models.Task, error) {
	task, err := s.Get(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: task title cannot be empty", ErrValidation)
		}
		if utf8.RuneCountInString(title) > maxTitleLen {
			return nil, fmt.Errorf("%w: task title cannot exceed 200 characters", ErrValidation)
		}
		task.Title = title
	}
	if upd.Priority != nil {
		p := models.TaskPriority(*upd.Priority)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: invalid priority level", ErrValidation)
		}
		task.Priority = p
	}
	if upd.Status != nil {
		st := models.TaskStatus(*upd.Status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: invalid status", ErrValidation)
		}
		task.Status = st
	}

	task.UpdatedAt = time.Now().UTC()
	found, err := s.tasks.Update(ctx, task)
	if err != nil {
		log.Printf("Update task: %v", err)
		return nil, ErrInternal
	}
	if !found {
		// deleted between the read and the write
		return nil, fmt.Errorf("task %w", ErrNotFound)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrAuthRequired
	}
	found, err := s.tasks.DeleteByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		log.Printf("Delete task: %v", err)
		return ErrInternal
	}
	if !found {
		return fmt.Errorf("task %w", ErrNotFound)
	}
	return nil
}
