package util

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is the bcrypt work factor used for all stored credentials.
const PasswordHashCost = 10

// HashPassword generates a salted bcrypt hash of the password. bcrypt embeds a
// fresh random salt in every digest, so hashing the same password twice yields
// different digests.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
// Returns true if the password and hash match, false otherwise.
func CheckPassword(password, hashedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
