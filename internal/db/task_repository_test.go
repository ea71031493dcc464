package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"tasklight/internal/models"
)

func testTask(owner uuid.UUID, title string, createdAt time.Time) *models.Task {
	return &models.Task{
		ID:        uuid.New(),
		UserID:    owner,
		Title:     title,
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityLow,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestTaskRepository_ListByOwner_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)

	// insert oldest first with distinct timestamps
	for i, title := range []string{"first", "second", "third"} {
		task := testTask(owner, title, base.Add(time.Duration(i)*time.Minute))
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Failed to create task %q: %v", title, err)
		}
	}
	// another user's task must not appear
	if err := repo.Create(ctx, testTask(uuid.New(), "other", base)); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	tasks, err := repo.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestTaskRepository_GetByIDAndOwner(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	task := testTask(owner, "mine", time.Now().UTC())
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	fetched, err := repo.GetByIDAndOwner(ctx, task.ID, owner)
	if err != nil {
		t.Fatalf("GetByIDAndOwner failed: %v", err)
	}
	if fetched.Title != "mine" {
		t.Errorf("Expected title %q, got %q", "mine", fetched.Title)
	}

	// an existing task looked up by a different owner is not found
	_, err = repo.GetByIDAndOwner(ctx, task.ID, uuid.New())
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for foreign owner, got %v", err)
	}
}

func TestTaskRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	task := testTask(owner, "before", time.Now().UTC())
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	task.Title = "after"
	task.Status = models.TaskStatusCompleted
	task.UpdatedAt = task.UpdatedAt.Add(time.Minute)
	found, err := repo.Update(ctx, task)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !found {
		t.Fatal("Update reported no matching row")
	}

	fetched, err := repo.GetByIDAndOwner(ctx, task.ID, owner)
	if err != nil {
		t.Fatalf("GetByIDAndOwner failed: %v", err)
	}
	if fetched.Title != "after" || fetched.Status != models.TaskStatusCompleted {
		t.Errorf("Unexpected task after update: %+v", fetched)
	}

	// update scoped to a different owner touches nothing
	foreign := *task
	foreign.UserID = uuid.New()
	foreign.Title = "hijacked"
	found, err = repo.Update(ctx, &foreign)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if found {
		t.Error("Update matched a row for a foreign owner")
	}
}

func TestTaskRepository_DeleteByIDAndOwner(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	task := testTask(owner, "doomed", time.Now().UTC())
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	// wrong owner deletes nothing
	found, err := repo.DeleteByIDAndOwner(ctx, task.ID, uuid.New())
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if found {
		t.Error("Delete matched a row for a foreign owner")
	}

	found, err = repo.DeleteByIDAndOwner(ctx, task.ID, owner)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !found {
		t.Error("Delete reported no matching row for the owner")
	}

	_, err = repo.GetByIDAndOwner(ctx, task.ID, owner)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows after delete, got %v", err)
	}
}
