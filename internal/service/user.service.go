package service

import (
	"errors"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/repository"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

type UserService interface {
	Register(email, username, password string) (*model.UserAccount, error)
	Authenticate(email, password string) (*model.UserAccount, error)
	IsPremium(userAccountID uuid.UUID) (bool, error)
}

type userServiceHandler struct {
	UserAccountRepository repository.UserAccountRepository
}

func NewUserService(userAccountRepository repository.UserAccountRepository) UserService {
	return userServiceHandler{
		UserAccountRepository: userAccountRepository,
	}
}

// Register creates a new account. Passwords are stored as bcrypt hashes,
// never as plaintext.
func (h userServiceHandler) Register(email, username, password string) (*model.UserAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	if username == "" {
		username = email
	}

	existing, err := h.UserAccountRepository.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return h.UserAccountRepository.Create(model.UserAccount{
		Email:          email,
		Username:       username,
		HashedPassword: string(hash),
	})
}

// Authenticate verifies the password against the stored bcrypt hash. The
// same error is returned for unknown emails and wrong passwords.
func (h userServiceHandler) Authenticate(email, password string) (*model.UserAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := h.UserAccountRepository.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

func (h userServiceHandler) IsPremium(userAccountID uuid.UUID) (bool, error) {
	account, err := h.UserAccountRepository.Get(userAccountID)
	if err != nil {
		return false, err
	}

	return account.IsPremium, nil
}
