package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt cost used for every stored operator hash
const hashCost = 12

// HashPassword hashes a plain password with bcrypt.
// Each call produces a different hash for the same input (random salt).
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword checks a plain password against a stored bcrypt hash.
// A malformed hash yields false, never an error escaping to the caller.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
