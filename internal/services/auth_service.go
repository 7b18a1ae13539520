package services

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"kevina/internal/domain"
	"kevina/internal/store"
)

var (
	ErrBadCreds    = errors.New("invalid email or password")
	ErrBadPassword = errors.New("current password is incorrect")
)

// Fixed secondary account. Cannot be changed through the admin panel
// (see DESIGN.md for the caveat).
const (
	secondaryEmail    = "akilainduwara205@gmail.com"
	secondaryPassword = "induwara5522"
)

const (
	UserTypeAdmin     = "admin"
	UserTypeSecondary = "secondary"
)

// AuthService authenticates the single admin operator. The "session" is a
// boolean flag in the persistent store with no expiry or token.
type AuthService struct {
	Store *store.Store
}

func NewAuthService(s *store.Store) *AuthService { return &AuthService{Store: s} }

// Verify checks email/password against the fixed secondary account first,
// then the mutable admin record. Returns the matched user type.
func (s *AuthService) Verify(email, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(email), []byte(secondaryEmail)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(secondaryPassword)) == 1 {
		return UserTypeSecondary, nil
	}
	creds, err := s.Store.AdminCredentials()
	if err != nil {
		return "", err
	}
	if creds.Email != email {
		return "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCreds
	}
	return UserTypeAdmin, nil
}

// Login verifies the credentials and persists the session flag and user
// type.
func (s *AuthService) Login(email, password string) (string, error) {
	userType, err := s.Verify(email, password)
	if err != nil {
		return "", err
	}
	if err := s.Store.SetFlag(store.KeyAdminSession, true); err != nil {
		return "", err
	}
	if err := s.Store.SetUserType(userType); err != nil {
		return "", err
	}
	return userType, nil
}

func (s *AuthService) Logout() error {
	if err := s.Store.SetFlag(store.KeyAdminSession, false); err != nil {
		return err
	}
	return s.Store.SetUserType("")
}

func (s *AuthService) IsAuthenticated() bool {
	ok, err := s.Store.Flag(store.KeyAdminSession)
	return err == nil && ok
}

func (s *AuthService) UserType() string {
	t, _ := s.Store.UserType()
	return t
}

// ChangePassword replaces the mutable record's password after checking the
// current one. The fixed secondary account is never affected.
func (s *AuthService) ChangePassword(current, updated string) error {
	creds, err := s.checkCurrent(current)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(updated), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	creds.PasswordHash = string(hash)
	return s.Store.SaveAdminCredentials(creds)
}

// ChangeEmail replaces the mutable record's email after checking the
// current password.
func (s *AuthService) ChangeEmail(current, newEmail string) error {
	creds, err := s.checkCurrent(current)
	if err != nil {
		return err
	}
	creds.Email = newEmail
	return s.Store.SaveAdminCredentials(creds)
}

// ChangeEmailAndPassword updates both fields in one save.
func (s *AuthService) ChangeEmailAndPassword(current, newEmail, newPassword string) error {
	creds, err := s.checkCurrent(current)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	creds.Email = newEmail
	creds.PasswordHash = string(hash)
	return s.Store.SaveAdminCredentials(creds)
}

func (s *AuthService) checkCurrent(current string) (domain.AdminCredentials, error) {
	creds, err := s.Store.AdminCredentials()
	if err != nil {
		return domain.AdminCredentials{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(current)) != nil {
		return domain.AdminCredentials{}, ErrBadPassword
	}
	return creds, nil
}
