package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"tasklight/internal/service"
)

/*
handles routes:
- GET /tasks - list the caller's tasks, newest first
- POST /tasks - create a new task
*/
func (h *Handler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTasks(w, r)
	case http.MethodPost:
		h.createTask(w, r)
	default:
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	tasks, err := h.Tasks.List(r.Context(), userID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	if !isJSONContentType(r) {
		sendError(w, "Content-Type must be application/json", http.StatusBadRequest)
		return
	}

	var input struct {
		Title    string `json:"title"`
		Priority string `json:"priority"`
		Status   string `json:"status"`
	}
	if err := decodeJSON(w, r, &input); err != nil {
		return
	}

	task, err := h.Tasks.Create(r.Context(), userID, input.Title, input.Priority, input.Status)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/tasks/"+task.ID.String())
	sendJSON(w, http.StatusCreated, map[string]any{"task": task})
}

/*
routes:
- GET /tasks/{id}
- PATCH /tasks/{id}
- DELETE /tasks/{id}
*/
func (h *Handler) HandleTaskByID(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	taskIDStr := r.URL.Path[len("/tasks/"):]
	if taskIDStr == "" {
		sendError(w, "task id is required", http.StatusBadRequest)
		return
	}
	taskID, err := uuid.Parse(taskIDStr)
	if err != nil {
		sendError(w, "task id must be a valid uuid", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getTaskByID(w, r, userID, taskID)
	case http.MethodPatch:
		h.updateTaskByID(w, r, userID, taskID)
	case http.MethodDelete:
		h.deleteTaskByID(w, r, userID, taskID)
	default:
		sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) getTaskByID(w http.ResponseWriter, r *http.Request, userID, taskID uuid.UUID) {
	task, err := h.Tasks.Get(r.Context(), userID, taskID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"task": task})
}

func (h *Handler) updateTaskByID(w http.ResponseWriter, r *http.Request, userID, taskID uuid.UUID) {
	if !isJSONContentType(r) {
		sendError(w, "Content-Type must be application/json", http.StatusBadRequest)
		return
	}

	var input struct {
		Title    *string `json:"title"`
		Priority *string `json:"priority"`
		Status   *string `json:"status"`
	}
	if err := decodeJSON(w, r, &input); err != nil {
		return
	}

	task, err := h.Tasks.Update(r.Context(), userID, taskID, service.TaskUpdate{
		Title:    input.Title,
		Priority: input.Priority,
		Status:   input.Status,
	})
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"task": task})
}

func (h *Handler) deleteTaskByID(w http.ResponseWriter, r *http.Request, userID, taskID uuid.UUID) {
	if err := h.Tasks.Delete(r.Context(), userID, taskID); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
