package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type UserAccountRepository interface {
	Create(account model.UserAccount) (*model.UserAccount, error)
	GetByEmail(email string) (*model.UserAccount, error)
	Get(userAccountID uuid.UUID) (*model.UserAccount, error)
	List() ([]model.UserAccount, error)
}

type userAccountRepositoryHandler struct {
	DB *sql.DB
}

func NewUserAccountRepository(db *sql.DB) UserAccountRepository {
	return userAccountRepositoryHandler{
		DB: db,
	}
}

func (h userAccountRepositoryHandler) Create(account model.UserAccount) (*model.UserAccount, error) {
	t := table.UserAccount

	account.CreatedAt = time.Now().UTC()
	account.UpdatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(account).RETURNING(t.AllColumns)

	out := model.UserAccount{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create user account: %w", err)
	}

	return &out, nil
}

// GetByEmail returns (nil, nil) when no account has the given email.
func (h userAccountRepositoryHandler) GetByEmail(email string) (*model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).WHERE(t.Email.EQ(postgres.String(email)))

	out := model.UserAccount{}
	err := query.Query(h.DB, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user account by email: %w", err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) Get(userAccountID uuid.UUID) (*model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := model.UserAccount{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get user account %s: %w", userAccountID, err)
	}

	return &out, nil
}

func (h userAccountRepositoryHandler) List() ([]model.UserAccount, error) {
	t := table.UserAccount

	query := t.SELECT(t.AllColumns).ORDER_BY(t.CreatedAt.ASC())

	out := []model.UserAccount{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list user accounts: %w", err)
	}

	return out, nil
}
