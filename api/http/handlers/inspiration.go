package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/inspiration"
	"github.com/renoplan/renoplan/pkg/security/token"
)

type InspirationHandler struct {
	useCase inspiration.UseCase
	log     *logrus.Logger
}

func NewInspirationHandler(useCase inspiration.UseCase, log *logrus.Logger) *InspirationHandler {
	return &InspirationHandler{useCase: useCase, log: log}
}

type createBoardRequest struct {
	Title     string  `json:"title"`
	ProjectID *string `json:"projectId"`
}

type addItemRequest struct {
	ImageURL string `json:"imageUrl"`
	Note     string `json:"note"`
}

type boardResponse struct {
	ID        string    `json:"id"`
	ProjectID *string   `json:"projectId,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type boardItemResponse struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	ImageURL  string    `json:"imageUrl"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateBoard creates an inspiration board, optionally pinned to a project.
// @Summary Create board
// @Tags    inspiration
// @Accept  json
// @Produce json
// @Param   input body createBoardRequest true "board payload"
// @Success 201 {object} boardResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /boards [post]
func (h *InspirationHandler) CreateBoard(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	var req createBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	var projectID *uuid.UUID
	if req.ProjectID != nil {
		pid, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid project id")
		}
		projectID = &pid
	}
	b, err := h.useCase.CreateBoard(c.Context(), id.UserID, req.Title, projectID)
	if err != nil {
		return h.respondError(c, err, "create board")
	}
	return presenter.JSON(c, http.StatusCreated, toBoardResponse(b))
}

// ListBoards returns the caller's boards, newest first.
// @Summary List boards
// @Tags    inspiration
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {array} boardResponse
// @Router  /boards [get]
func (h *InspirationHandler) ListBoards(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	limit, offset := parseLimitOffset(c, 50)
	list, err := h.useCase.ListBoards(c.Context(), id.UserID, limit, offset)
	if err != nil {
		return h.respondError(c, err, "list boards")
	}
	res := make([]boardResponse, 0, len(list))
	for _, b := range list {
		res = append(res, toBoardResponse(b))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// DeleteBoard removes a board and its items.
// @Summary Delete board
// @Tags    inspiration
// @Param   id path string true "board id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /boards/{id} [delete]
func (h *InspirationHandler) DeleteBoard(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	boardID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid board id")
	}
	if err := h.useCase.DeleteBoard(c.Context(), id.UserID, boardID); err != nil {
		return h.respondError(c, err, "delete board")
	}
	return presenter.NoContent(c)
}

// AddItem saves a reference image URL onto a board.
// @Summary Add board item
// @Tags    inspiration
// @Accept  json
// @Produce json
// @Param   id    path string         true "board id"
// @Param   input body addItemRequest true "item payload"
// @Success 201 {object} boardItemResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /boards/{id}/items [post]
func (h *InspirationHandler) AddItem(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	boardID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid board id")
	}
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	it, err := h.useCase.AddItem(c.Context(), id.UserID, boardID, req.ImageURL, req.Note)
	if err != nil {
		return h.respondError(c, err, "add board item")
	}
	return presenter.JSON(c, http.StatusCreated, toBoardItemResponse(it))
}

// ListItems returns a board's items, newest first.
// @Summary List board items
// @Tags    inspiration
// @Produce json
// @Param   id path string true "board id"
// @Success 200 {array} boardItemResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /boards/{id}/items [get]
func (h *InspirationHandler) ListItems(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	boardID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid board id")
	}
	list, err := h.useCase.ListItems(c.Context(), id.UserID, boardID)
	if err != nil {
		return h.respondError(c, err, "list board items")
	}
	res := make([]boardItemResponse, 0, len(list))
	for _, it := range list {
		res = append(res, toBoardItemResponse(it))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// DeleteItem removes a single item from a board.
// @Summary Delete board item
// @Tags    inspiration
// @Param   id     path string true "board id"
// @Param   itemID path string true "item id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /boards/{id}/items/{itemID} [delete]
func (h *InspirationHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := token.Caller(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
	}
	boardID, err := parseUUIDParam(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid board id")
	}
	itemID, err := parseUUIDParam(c, "itemID")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid item id")
	}
	if err := h.useCase.DeleteItem(c.Context(), id.UserID, boardID, itemID); err != nil {
		return h.respondError(c, err, "delete board item")
	}
	return presenter.NoContent(c)
}

func (h *InspirationHandler) respondError(c *fiber.Ctx, err error, op string) error {
	var ve inspiration.ErrValidation
	switch {
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, string(ve))
	case errors.Is(err, inspiration.ErrProjectNotFound):
		return presenter.Error(c, http.StatusNotFound, "project not found")
	case errors.Is(err, inspiration.ErrBoardNotFound):
		return presenter.Error(c, http.StatusNotFound, "board not found")
	case errors.Is(err, inspiration.ErrItemNotFound):
		return presenter.Error(c, http.StatusNotFound, "board item not found")
	default:
		h.log.WithError(err).Error(op + " failed")
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func toBoardResponse(b inspiration.Board) boardResponse {
	res := boardResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		CreatedAt: b.CreatedAt,
	}
	if b.ProjectID != nil {
		s := b.ProjectID.String()
		res.ProjectID = &s
	}
	return res
}

func toBoardItemResponse(it inspiration.Item) boardItemResponse {
	return boardItemResponse{
		ID:        it.ID.String(),
		BoardID:   it.BoardID.String(),
		ImageURL:  it.ImageURL,
		Note:      it.Note,
		CreatedAt: it.CreatedAt,
	}
}
