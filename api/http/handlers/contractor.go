package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/contractor"
	"github.com/renoplan/renoplan/pkg/security/token"
)

type ContractorHandler struct {
	useCase contractor.UseCase
	log     *logrus.Logger
}

func NewContractorHandler(useCase contractor.UseCase, log *logrus.Logger) *ContractorHandler {
	return &ContractorHandler{useCase: useCase, log: log}
}

type contractorRequest struct {
	Name  string `json:"name"`
	Trade string `json:"trade"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type updateContractorRequest struct {
	Name  *string `json:"name"`
	Trade *string `json:"trade"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

type contractorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Trade     string    `json:"trade,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create adds a contractor to the caller's address book.
// @Summary Create contractor
// @Tags    contractors
// @Accept  json
// @Produce json
// @Param   input body contractorRequest true "contractor payload"
// @Success 201 {object} contractorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /contractors [post]
func (h *ContractorHandler) Create(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	var req contractorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	ct, err := h.useCase.Create(c.Context(), id.UserID, contractor.CreateInput{
		Name:  req.Name,
		Trade: req.Trade,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		return h.respondError(c, err, "create contractor")
	}
	return presenter.JSON(c, http.StatusCreated, toContractorResponse(ct))
}

// Get returns one contractor.
// @Summary Get contractor
// @Tags    contractors
// @Produce json
// @Param   id path string true "contractor id"
// @Success 200 {object} contractorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /contractors/{id} [get]
func (h *ContractorHandler) Get(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	contractorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid contractor id")
	}
	ct, err := h.useCase.Get(c.Context(), id.UserID, contractorID)
	if err != nil {
		return h.respondError(c, err, "get contractor")
	}
	return presenter.JSON(c, http.StatusOK, toContractorResponse(ct))
}

// List returns the caller's contractors sorted by name.
// @Summary List contractors
// @Tags    contractors
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {array} contractorResponse
// @Router  /contractors [get]
func (h *ContractorHandler) List(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.useCase.List(c.Context(), id.UserID, limit, offset)
	if err != nil {
		return h.respondError(c, err, "list contractors")
	}
	res := make([]contractorResponse, 0, len(list))
	for _, ct := range list {
		res = append(res, toContractorResponse(ct))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Update patches contractor fields.
// @Summary Update contractor
// @Tags    contractors
// @Accept  json
// @Produce json
// @Param   id    path string                  true "contractor id"
// @Param   input body updateContractorRequest true "fields to update"
// @Success 200 {object} contractorResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /contractors/{id} [patch]
func (h *ContractorHandler) Update(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	contractorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid contractor id")
	}
	var req updateContractorRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	ct, err := h.useCase.Update(c.Context(), id.UserID, contractorID, contractor.Update{
		Name:  req.Name,
		Trade: req.Trade,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		return h.respondError(c, err, "update contractor")
	}
	return presenter.JSON(c, http.StatusOK, toContractorResponse(ct))
}

// Delete removes a contractor; budget items referencing it are detached.
// @Summary Delete contractor
// @Tags    contractors
// @Param   id path string true "contractor id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /contractors/{id} [delete]
func (h *ContractorHandler) Delete(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	contractorID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid contractor id")
	}
	if err := h.useCase.Delete(c.Context(), id.UserID, contractorID); err != nil {
		return h.respondError(c, err, "delete contractor")
	}
	return presenter.NoContent(c)
}

func (h *ContractorHandler) respondError(c *fiber.Ctx, err error, op string) error {
	var ve contractor.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, string(ve))
	case errors.Is(err, contractor.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "contractor not found")
	default:
		h.log.WithError(err).Error(op + " failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func toContractorResponse(ct contractor.Contractor) contractorResponse {
	return contractorResponse{
		ID:        ct.ID.String(),
		Name:      ct.Name,
		Trade:     ct.Trade,
		Phone:     ct.Phone,
		Email:     ct.Email,
		Notes:     ct.Notes,
		CreatedAt: ct.CreatedAt,
	}
}
