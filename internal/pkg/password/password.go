package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. bcrypt generates a fresh salt per call, so
// hashing the same plaintext twice yields different hashes.
const Cost = 10

// Hash returns the salted bcrypt hash of plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches the stored hash. It fails closed: a
// malformed hash yields false, never an error, so callers keep a single
// bad-password path.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
