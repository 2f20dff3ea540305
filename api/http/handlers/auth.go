package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
	"github.com/renoplan/renoplan/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		var ve *auth.ValidationError
		switch {
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Reason)
		case errors.Is(err, auth.ErrUserAlreadyExists):
			// Deliberately vague: do not confirm which field collided.
			return presenter.Error(c, http.StatusConflict, "account already exists")
		default:
			h.log.WithError(err).Error("register failed")
			return presenter.Error(c, http.StatusInternalServerError, "failed to register")
		}
	}

	return presenter.JSON(c, http.StatusCreated, toAuthResponse(result))
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		var ve *auth.ValidationError
		switch {
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Reason)
		case errors.Is(err, auth.ErrInvalidCredentials):
			// One message for unknown email and wrong password alike.
			return presenter.Error(c, http.StatusUnauthorized, "invalid email or password")
		default:
			h.log.WithError(err).Error("login failed")
			return presenter.Error(c, http.StatusInternalServerError, "failed to login")
		}
	}

	return presenter.JSON(c, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{
		Token: r.Token,
		User: userResponse{
			ID:        r.User.ID,
			Email:     r.User.Email,
			CreatedAt: r.User.CreatedAt,
		},
	}
}
