// Package token signs and verifies the bearer tokens that carry caller
// identity between requests. Tokens are stateless: nothing is stored
// server-side and rotating the secret invalidates everything issued before.
package token

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Lifetime is fixed by contract. A config knob here would let the library
// exp check and the explicit one drift apart.
const Lifetime = 24 * time.Hour

var (
	// ErrInvalid covers tampered, malformed and wrong-algorithm tokens.
	ErrInvalid = errors.New("token is invalid")
	// ErrExpired is a structurally valid token past its expiry.
	ErrExpired = errors.New("token is expired")
	// ErrNoSecret means the codec was built without a signing secret.
	// Operational defect, not a caller problem.
	ErrNoSecret = errors.New("signing secret is not configured")
)

// Claims includes the registered claims plus our identity fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
}

// Identity is the verified caller handed to downstream handlers.
type Identity struct {
	UserID int64
	Email  string
}

// Codec issues and verifies HS256 tokens with a single symmetric secret.
type Codec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewCodec(secret, issuer string) *Codec {
	return &Codec{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue signs a claim set for the given user. Timestamps are epoch seconds;
// expiry is issuance time plus Lifetime.
func (c *Codec) Issue(_ context.Context, userID int64, email string) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrNoSecret
	}
	now := c.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
		UserID: userID,
		Email:  email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify decodes and validates a token. Only HS256 is accepted; a token
// claiming any other algorithm is ErrInvalid, never re-interpreted.
func (c *Codec) Verify(tokenStr string) (Identity, error) {
	if len(c.secret) == 0 {
		return Identity{}, ErrNoSecret
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpired
		}
		return Identity{}, ErrInvalid
	}
	if !tok.Valid {
		return Identity{}, ErrInvalid
	}
	// The library already validated exp; re-check explicitly so a token
	// without an exp claim can never pass.
	if claims.ExpiresAt == nil {
		return Identity{}, ErrInvalid
	}
	if !c.now().Before(claims.ExpiresAt.Time) {
		return Identity{}, ErrExpired
	}
	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
