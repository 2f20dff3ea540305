package token

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/renoplan/renoplan/api/http/presenter"
)

const (
	localUserID = "userID"
	localEmail  = "userEmail"
)

// NewAuthMiddleware returns the per-request auth gate: extract the bearer
// token, verify it, and stash the caller identity in the request context.
// Every request is re-verified independently; nothing is cached.
//
// The client always receives the same generic 401 body. Which check failed
// (missing header, bad signature, expiry) is logged server-side only.
func NewAuthMiddleware(codec *Codec, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := ExtractBearer(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return reject(c, log, err)
		}
		id, err := codec.Verify(raw)
		if err != nil {
			return reject(c, log, err)
		}
		c.Locals(localUserID, id.UserID)
		c.Locals(localEmail, id.Email)
		return c.Next()
	}
}

func reject(c *fiber.Ctx, log *logrus.Logger, err error) error {
	log.WithFields(logrus.Fields{
		"reason": err.Error(),
		"method": c.Method(),
		"path":   c.Path(),
	}).Warn("request rejected by auth gate")
	if errors.Is(err, ErrNoSecret) {
		return presenter.Error(c, http.StatusInternalServerError, "internal server error")
	}
	return presenter.Error(c, http.StatusUnauthorized, "invalid or expired token")
}

// Caller returns the identity stored by NewAuthMiddleware. ok is false on
// routes that were not behind the gate.
func Caller(c *fiber.Ctx) (Identity, bool) {
	id, okID := c.Locals(localUserID).(int64)
	email, okEmail := c.Locals(localEmail).(string)
	if !okID || !okEmail {
		return Identity{}, false
	}
	return Identity{UserID: id, Email: email}, true
}
