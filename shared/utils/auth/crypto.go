package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// SeedPasswordCost is used for generated accounts, which never sign in.
const SeedPasswordCost = bcrypt.MinCost

// HashPassword hashes a plain text password with the default bcrypt cost
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, bcrypt.DefaultCost)
}

// HashPasswordWithCost hashes a plain text password with the given bcrypt cost
func HashPasswordWithCost(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
