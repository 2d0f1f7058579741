package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted one-way digest of secret. The raw secret is never
// stored or logged.
func Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether secret matches digest.
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
