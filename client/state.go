package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
)

var ErrNotLoggedIn = errors.New("client: not logged in")

// State caches the current user and task list. The server is the source of
// truth: the cache only changes from a successful server response, so a
// failed call leaves it untouched. An optional file path persists the cache
// between runs for display continuity.
type State struct {
	mu     sync.Mutex
	client *Client
	user   *User
	tasks  []Task
	path   string
}

func NewState(c *Client) *State {
	return &State{client: c}
}

// NewPersistentState loads any previously saved session from path and
// writes the cache back there after every successful change.
func NewPersistentState(c *Client, path string) (*State, error) {
	s := &State{client: c, path: path}
	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if s.user != nil {
		c.UserID = s.user.ID
	}
	return s, nil
}

type savedState struct {
	User  *User  `json:"user"`
	Tasks []Task `json:"tasks"`
}

func (s *State) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var saved savedState
	if err := json.Unmarshal(data, &saved); err != nil {
		return err
	}
	s.user = saved.User
	s.tasks = saved.Tasks
	return nil
}

// save is called with s.mu held.
func (s *State) save() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(savedState{User: s.user, Tasks: s.tasks}, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

func (s *State) Signup(ctx context.Context, username, email, password string) (*User, error) {
	user, err := s.client.Signup(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.client.UserID = user.ID
	s.tasks = nil
	s.save()
	return user, nil
}

func (s *State) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.client.UserID = user.ID
	s.tasks = nil
	s.save()
	s.mu.Unlock()

	// best effort; the cache stays empty if the fetch fails
	_ = s.Refresh(ctx)
	return user, nil
}

func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.tasks = nil
	s.client.UserID = ""
	s.save()
}

// Refresh replaces the cached task list with the server's.
func (s *State) Refresh(ctx context.Context) error {
	if s.CurrentUser() == nil {
		return ErrNotLoggedIn
	}
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.save()
	return nil
}

func (s *State) AddTask(ctx context.Context, title, priority, status string) (*Task, error) {
	if s.CurrentUser() == nil {
		return nil, ErrNotLoggedIn
	}
	task, err := s.client.CreateTask(ctx, title, priority, status)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// server lists newest first
	s.tasks = append([]Task{*task}, s.tasks...)
	s.save()
	return task, nil
}

func (s *State) EditTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	if s.CurrentUser() == nil {
		return nil, ErrNotLoggedIn
	}
	task, err := s.client.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = *task
			break
		}
	}
	s.save()
	return task, nil
}

func (s *State) SetStatus(ctx context.Context, id, status string) (*Task, error) {
	return s.EditTask(ctx, id, TaskPatch{Status: &status})
}

func (s *State) SetPriority(ctx context.Context, id, priority string) (*Task, error) {
	return s.EditTask(ctx, id, TaskPatch{Priority: &priority})
}

func (s *State) DeleteTask(ctx context.Context, id string) error {
	if s.CurrentUser() == nil {
		return ErrNotLoggedIn
	}
	if err := s.client.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.save()
	return nil
}

func (s *State) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Display returns the cached tasks grouped for rendering under the given
// filter and sort settings.
func (s *State) Display(f PriorityFilter, dir SortDirection) (pending, completed []Task) {
	return Display(s.Tasks(), f, dir)
}
