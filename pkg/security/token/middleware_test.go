package token

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(codec *Codec) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(codec, log), func(c *fiber.Ctx) error {
		id, ok := Caller(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"userId": id.UserID, "email": id.Email})
	})
	return app
}

func TestAuthMiddleware_Success(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", "renoplan")
	tok, err := codec.Issue(context.Background(), 7, "alice@example.com")
	require.NoError(t, err)

	app := newProtectedApp(codec)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"userId"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.UserID)
	assert.Equal(t, "alice@example.com", body.Email)
}

// Every rejection must look the same to the client, whatever the actual cause.
func TestAuthMiddleware_GenericRejection(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", "renoplan")

	expiredCodec := NewCodec("super-secret", "renoplan")
	expiredCodec.now = func() time.Time { return time.Now().Add(-Lifetime - time.Minute) }
	expiredTok, err := expiredCodec.Issue(context.Background(), 1, "u@example.com")
	require.NoError(t, err)

	foreignTok, err := NewCodec("other-secret", "renoplan").Issue(context.Background(), 1, "u@example.com")
	require.NoError(t, err)

	app := newProtectedApp(codec)
	headers := map[string]string{
		"no header":     "",
		"wrong scheme":  "Basic xyz",
		"garbage token": "Bearer not.a.jwt",
		"expired token": "Bearer " + expiredTok,
		"wrong secret":  "Bearer " + foreignTok,
	}

	var bodies []string
	for name, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		b, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
		bodies = append(bodies, string(b))
	}
	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}
