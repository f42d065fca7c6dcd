package usecase

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword rejects passwords bcrypt would refuse (over 72 bytes) as a
// validation failure instead of a store error.
func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", unexpected(err)
	}
	return string(hashed), nil
}
