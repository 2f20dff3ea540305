package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/project"
	"github.com/renoplan/renoplan/pkg/security/token"
)

type ProjectHandler struct {
	useCase project.UseCase
	log     *logrus.Logger
}

func NewProjectHandler(useCase project.UseCase, log *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{useCase: useCase, log: log}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Create a new renovation project.
// @Summary Create project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   input body createProjectRequest true "project payload"
// @Success 201 {object} projectResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.useCase.Create(c.Context(), id.UserID, req.Name, req.Description)
	if err != nil {
		return h.respondError(c, err, "create project")
	}
	return presenter.JSON(c, http.StatusCreated, toProjectResponse(p))
}

// Get returns one project by id.
// @Summary Get project
// @Tags    projects
// @Produce json
// @Param   id path string true "project id"
// @Success 200 {object} projectResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	p, err := h.useCase.Get(c.Context(), id.UserID, projectID)
	if err != nil {
		return h.respondError(c, err, "get project")
	}
	return presenter.JSON(c, http.StatusOK, toProjectResponse(p))
}

// List returns the caller's projects, newest first.
// @Summary List projects
// @Tags    projects
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {array} projectResponse
// @Router  /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.useCase.List(c.Context(), id.UserID, limit, offset)
	if err != nil {
		return h.respondError(c, err, "list projects")
	}
	res := make([]projectResponse, 0, len(list))
	for _, p := range list {
		res = append(res, toProjectResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Update patches name/description/status.
// @Summary Update project
// @Tags    projects
// @Accept  json
// @Produce json
// @Param   id    path string               true "project id"
// @Param   input body updateProjectRequest true "fields to update"
// @Success 200 {object} projectResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [patch]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	var req updateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u := project.Update{Name: req.Name, Description: req.Description}
	if req.Status != nil {
		s := project.Status(*req.Status)
		u.Status = &s
	}
	p, err := h.useCase.Update(c.Context(), id.UserID, projectID, u)
	if err != nil {
		return h.respondError(c, err, "update project")
	}
	return presenter.JSON(c, http.StatusOK, toProjectResponse(p))
}

// Delete removes a project and everything under it.
// @Summary Delete project
// @Tags    projects
// @Param   id path string true "project id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	if err := h.useCase.Delete(c.Context(), id.UserID, projectID); err != nil {
		return h.respondError(c, err, "delete project")
	}
	return presenter.NoContent(c)
}

func (h *ProjectHandler) respondError(c *fiber.Ctx, err error, op string) error {
	var ve project.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, string(ve))
	case errors.Is(err, project.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "project not found")
	default:
		h.log.WithError(err).Error(op + " failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func toProjectResponse(p project.Project) projectResponse {
	return projectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}
