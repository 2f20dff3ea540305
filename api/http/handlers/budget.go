package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/budget"
	"github.com/renoplan/renoplan/pkg/security/token"
)

type BudgetHandler struct {
	useCase budget.UseCase
	log     *logrus.Logger
}

func NewBudgetHandler(useCase budget.UseCase, log *logrus.Logger) *BudgetHandler {
	return &BudgetHandler{useCase: useCase, log: log}
}

type createBudgetItemRequest struct {
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	PlannedCents int64   `json:"plannedCents"`
	ActualCents  int64   `json:"actualCents"`
	ContractorID *string `json:"contractorId"`
}

type updateBudgetItemRequest struct {
	Category        *string `json:"category"`
	Description     *string `json:"description"`
	PlannedCents    *int64  `json:"plannedCents"`
	ActualCents     *int64  `json:"actualCents"`
	ContractorID    *string `json:"contractorId"`
	ClearContractor bool    `json:"clearContractor"`
}

type budgetItemResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	PlannedCents int64     `json:"plannedCents"`
	ActualCents  int64     `json:"actualCents"`
	ContractorID *string   `json:"contractorId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type categoryTotalResponse struct {
	Category     string `json:"category"`
	PlannedCents int64  `json:"plannedCents"`
	ActualCents  int64  `json:"actualCents"`
}

// Create adds a budget line to a project.
// @Summary Create budget item
// @Tags    budget
// @Accept  json
// @Produce json
// @Param   projectID path string                  true "project id"
// @Param   input     body createBudgetItemRequest true "budget item payload"
// @Success 201 {object} budgetItemResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{projectID}/budget [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "projectID")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	var req createBudgetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	in := budget.CreateInput{
		ProjectID:    projectID,
		Category:     req.Category,
		Description:  req.Description,
		PlannedCents: req.PlannedCents,
		ActualCents:  req.ActualCents,
	}
	if req.ContractorID != nil {
		contractorID, err := uuid.Parse(*req.ContractorID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid contractor id")
		}
		in.ContractorID = &contractorID
	}
	it, err := h.useCase.Create(c.Context(), id.UserID, in)
	if err != nil {
		return h.respondError(c, err, "create budget item")
	}
	return presenter.JSON(c, http.StatusCreated, toBudgetItemResponse(it))
}

// List returns the project's budget lines grouped by category order.
// @Summary List budget items
// @Tags    budget
// @Produce json
// @Param   projectID path string true "project id"
// @Success 200 {array} budgetItemResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{projectID}/budget [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
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
		return h.respondError(c, err, "list budget items")
	}
	res := make([]budgetItemResponse, 0, len(list))
	for _, it := range list {
		res = append(res, toBudgetItemResponse(it))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Summary returns per-category planned/actual totals.
// @Summary Budget summary
// @Tags    budget
// @Produce json
// @Param   projectID path string true "project id"
// @Success 200 {array} categoryTotalResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /projects/{projectID}/budget/summary [get]
func (h *BudgetHandler) Summary(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	projectID, err := parseUUIDParam(c, "projectID")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid project id")
	}
	totals, err := h.useCase.Summary(c.Context(), id.UserID, projectID)
	if err != nil {
		return h.respondError(c, err, "budget summary")
	}
	res := make([]categoryTotalResponse, 0, len(totals))
	for _, ct := range totals {
		res = append(res, categoryTotalResponse(ct))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Update patches a budget line.
// @Summary Update budget item
// @Tags    budget
// @Accept  json
// @Produce json
// @Param   id    path string                  true "budget item id"
// @Param   input body updateBudgetItemRequest true "fields to update"
// @Success 200 {object} budgetItemResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /budget/{id} [patch]
func (h *BudgetHandler) Update(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid budget item id")
	}
	var req updateBudgetItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	u := budget.Update{
		Category:        req.Category,
		Description:     req.Description,
		PlannedCents:    req.PlannedCents,
		ActualCents:     req.ActualCents,
		ClearContractor: req.ClearContractor,
	}
	if req.ContractorID != nil {
		contractorID, err := uuid.Parse(*req.ContractorID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid contractor id")
		}
		u.ContractorID = &contractorID
	}
	it, err := h.useCase.Update(c.Context(), id.UserID, itemID, u)
	if err != nil {
		return h.respondError(c, err, "update budget item")
	}
	return presenter.JSON(c, http.StatusOK, toBudgetItemResponse(it))
}

// Delete removes a budget line.
// @Summary Delete budget item
// @Tags    budget
// @Param   id path string true "budget item id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /budget/{id} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid budget item id")
	}
	if err := h.useCase.Delete(c.Context(), id.UserID, itemID); err != nil {
		return h.respondError(c, err, "delete budget item")
	}
	return presenter.NoContent(c)
}

func (h *BudgetHandler) respondError(c *fiber.Ctx, err error, op string) error {
	var ve budget.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, string(ve))
	case errors.Is(err, budget.ErrContractorNotFound):
		return presenter.Error(c, http.StatusBadRequest, "contractor not found")
	case errors.Is(err, budget.ErrProjectNotFound):
		return presenter.Error(c, http.StatusNotFound, "project not found")
	case errors.Is(err, budget.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "budget item not found")
	default:
		h.log.WithError(err).Error(op + " failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func toBudgetItemResponse(it budget.Item) budgetItemResponse {
	res := budgetItemResponse{
		ID:           it.ID.String(),
		ProjectID:    it.ProjectID.String(),
		Category:     it.Category,
		Description:  it.Description,
		PlannedCents: it.PlannedCents,
		ActualCents:  it.ActualCents,
		CreatedAt:    it.CreatedAt,
	}
	if it.ContractorID != nil {
		s := it.ContractorID.String()
		res.ContractorID = &s
	}
	return res
}
