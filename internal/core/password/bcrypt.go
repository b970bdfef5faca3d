package password

import "golang.org/x/crypto/bcrypt"

// BcryptHasher is the salted, cost-stretched scheme recommended for new
// deployments. Verifiers produced here are not interchangeable with the
// legacy SHA-256 scheme.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(plaintext, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), []byte(plaintext)) == nil
}
