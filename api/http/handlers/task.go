package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/security/token"
	"github.com/renoplan/renoplan/pkg/task"
)

type TaskHandler struct {
	useCase task.UseCase
	log     *logrus.Logger
}

func NewTaskHandler(useCase task.UseCase, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{useCase: useCase, log: log}
}

type createTaskRequest struct {
	Title    string     `json:"title"`
	Room     string     `json:"room"`
	ParentID *string    `json:"parentId"`
	Priority int        `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title        *string    `json:"title"`
	Room         *string    `json:"room"`
	Status       *string    `json:"status"`
	Priority     *int       `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	ClearDueDate bool       `json:"clearDueDate"`
}

type taskResponse struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	ParentID  *string    `json:"parentId,omitempty"`
	Title     string     `json:"title"`
	Room      string     `json:"room,omitempty"`
	Status    string     `json:"status"`
	Priority  int        `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Create adds a task (or subtask, when parentId is set) to a project.
// @Summary Create task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   projectID path string            true "project id"
// @Param   input     body createTaskRequest true "task payload"
// @Success 201 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{projectID}/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "projectID")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	in := task.CreateInput{
		ProjectID: projectID,
		Title:     req.Title,
		Room:      req.Room,
		Priority:  req.Priority,
		DueDate:   req.DueDate,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid parent id")
		}
		in.ParentID = &parentID
	}
	t, err := h.useCase.Create(c.Context(), id.UserID, in)
	if err != nil {
		return h.respondError(c, err, "create task")
	}
	return presenter.JSON(c, http.StatusCreated, toTaskResponse(t))
}

// List returns the project's tasks, parents first.
// @Summary List tasks
// @Tags    tasks
// @Produce json
// @Param   projectID path string true "project id"
// @Success 200 {array} taskResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{projectID}/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "projectID")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	list, err := h.useCase.ListByProject(c.Context(), id.UserID, projectID)
	if err != nil {
		return h.respondError(c, err, "list tasks")
	}
	res := make([]taskResponse, 0, len(list))
	for _, t := range list {
		res = append(res, toTaskResponse(t))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Update patches a task.
// @Summary Update task
// @Tags    tasks
// @Accept  json
// @Produce json
// @Param   id    path string            true "task id"
// @Param   input body updateTaskRequest true "fields to update"
// @Success 200 {object} taskResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	var req updateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u := task.Update{
		Title:        req.Title,
		Room:         req.Room,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		ClearDueDate: req.ClearDueDate,
	}
	if req.Status != nil {
		s := task.Status(*req.Status)
		u.Status = &s
	}
	t, err := h.useCase.Update(c.Context(), id.UserID, taskID, u)
	if err != nil {
		return h.respondError(c, err, "update task")
	}
	return presenter.JSON(c, http.StatusOK, toTaskResponse(t))
}

// Delete removes a task and its subtasks.
// @Summary Delete task
// @Tags    tasks
// @Param   id path string true "task id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	taskID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid task id")
	}
	if err := h.useCase.Delete(c.Context(), id.UserID, taskID); err != nil {
		return h.respondError(c, err, "delete task")
	}
	return presenter.NoContent(c)
}

func (h *TaskHandler) respondError(c *fiber.Ctx, err error, op string) error {
	var ve task.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, string(ve))
	case errors.Is(err, task.ErrParentNotFound), errors.Is(err, task.ErrNestedSubtask):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrProjectNotFound):
		return presenter.Error(c, http.StatusNotFound, "project not found")
	case errors.Is(err, task.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "task not found")
	default:
		h.log.WithError(err).Error(op + " failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func toTaskResponse(t task.Task) taskResponse {
	res := taskResponse{
		ID:        t.ID.String(),
		ProjectID: t.ProjectID.String(),
		Title:     t.Title,
		Room:      t.Room,
		Status:    string(t.Status),
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
	}
	if t.ParentID != nil {
		s := t.ParentID.String()
		res.ParentID = &s
	}
	return res
}
