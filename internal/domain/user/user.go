package user

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Role distinguishes the two marketplace sides.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleSeller:
		return RoleSeller, nil
	default:
		return "", ErrInvalidRole
	}
}

// Actor is the identity every operation receives explicitly instead of
// reading ambient session state.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) Authenticated() bool {
	return a.ID != ""
}

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Address      string
	Role         Role
	PasswordHash string
	DateOfBirth  string
	CreatedAt    time.Time
}

func NewUser(id, name, email, phone, address, rawRole, password, dateOfBirth string) (*User, error) {
	if id == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}
	if dateOfBirth == "" {
		return nil, ErrMissingField
	}
	role, err := ParseRole(rawRole)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &User{
		ID:           id,
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        phone,
		Address:      address,
		Role:         role,
		PasswordHash: hash,
		DateOfBirth:  dateOfBirth,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword reports whether the password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	parts := strings.SplitN(u.PasswordHash, "$", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(parts[1])) == 1
}

// Hash format: hex(salt)$hex(sha256(salt||password)).
func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	sum := sha256.Sum256(append(salt, []byte(password)...))
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(sum[:]), nil
}
