package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/db/models/postgres/public/table"
	"stockfolio/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Get(userAccountID uuid.UUID, name string) (*model.Portfolio, error)
	GetOrCreate(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error)
	List(userAccountID uuid.UUID) ([]model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	DB *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{DB: db}
}

// Get returns (nil, nil) when the user has no portfolio with the given
// name. Names are matched in normalized form.
func (h portfolioRepositoryHandler) Get(userAccountID uuid.UUID, name string) (*model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).
		WHERE(
			postgres.AND(
				t.UserAccountID.EQ(postgres.UUID(userAccountID)),
				t.Name.EQ(postgres.String(domain.NormalizePortfolioName(name))),
			),
		)

	out := model.Portfolio{}
	err := query.Query(h.DB, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %q: %w", name, err)
	}

	return &out, nil
}

// GetOrCreate inserts the portfolio row if (user, name) does not exist yet.
// Runs on the caller's transaction so lot inserts can follow atomically.
func (h portfolioRepositoryHandler) GetOrCreate(tx *sql.Tx, portfolio model.Portfolio) (*model.Portfolio, error) {
	t := table.Portfolio

	portfolio.Name = domain.NormalizePortfolioName(portfolio.Name)
	portfolio.CreatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).
		MODEL(portfolio).
		ON_CONFLICT(t.UserAccountID, t.Name).
		DO_UPDATE(
			postgres.SET(
				t.Name.SET(t.EXCLUDED.Name),
			),
		).
		RETURNING(t.AllColumns)

	out := model.Portfolio{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create portfolio %q: %w", portfolio.Name, err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) List(userAccountID uuid.UUID) ([]model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).
		WHERE(t.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(t.CreatedAt.ASC())

	out := []model.Portfolio{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return out, nil
}
