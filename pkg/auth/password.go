package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; the work factor is embedded in each hash, so changing
// it later only affects newly created accounts.
const bcryptCost = 12

// dummyHash is a bcrypt hash of a random throwaway string. Login verifies
// against it when the email is unknown so both failure paths cost the same.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword produces a salted bcrypt hash. Hashing the same plaintext
// twice yields different hashes (fresh salt); CheckPassword still matches.
func HashPassword(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plaintext matches the stored hash. A mismatch
// is a normal false, not an error; a malformed hash (corrupted storage) is
// also false — callers surface both as invalid credentials.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
