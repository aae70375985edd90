package model

import (
	"fmt"

	"gorm.io/gorm"
)

// Valid values for User.Role.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// User represents a login account. For doctors the username doubles as the
// attending_doctor_id referenced by patient records.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"column:username;uniqueIndex" example:"D001"`
	Name         string `json:"name" gorm:"column:name" example:"Doctor 001"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	Role         string `json:"role" gorm:"column:role" example:"doctor"`
}

// SeedAccount is one entry of the fixed provisioning list. The plaintext
// password only ever lives in this in-process list; storage sees the hash.
type SeedAccount struct {
	Username string
	Password string
	Name     string
	Role     string
}

// DefaultSeedAccounts returns the accounts provisioned on initial setup.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Username: "D001", Password: "sharonD001", Name: "Doctor 001", Role: RoleDoctor},
		{Username: "D002", Password: "sharonD002", Name: "Doctor 002", Role: RoleDoctor},
		{Username: "D003", Password: "sharonD003", Name: "Doctor 003", Role: RoleDoctor},
		{Username: "sharon", Password: "sharon12345", Name: "sharon", Role: RoleAdmin},
	}
}

// SeedUsers ensures each account in the list exists, hashing passwords with the
// provided hash function. Existing usernames are left untouched and reported as
// already present, so the operation is safe to repeat.
func SeedUsers(db *gorm.DB, accounts []SeedAccount, hash func(string) (string, error)) ([]string, error) {
	results := make([]string, 0, len(accounts))

	for _, account := range accounts {
		var existing User
		// Check if the account already exists.
		err := db.Where("username = ?", account.Username).First(&existing).Error
		if err == nil {
			results = append(results, fmt.Sprintf("user %s already exists", account.Username))
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return results, err
		}

		passwordHash, err := hash(account.Password)
		if err != nil {
			return results, fmt.Errorf("failed to hash password for %s: %w", account.Username, err)
		}

		user := User{
			Username:     account.Username,
			Name:         account.Name,
			PasswordHash: passwordHash,
			Role:         account.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return results, fmt.Errorf("failed to seed user %s: %w", account.Username, err)
		}
		results = append(results, fmt.Sprintf("user %s created", account.Username))
	}
	return results, nil
}
