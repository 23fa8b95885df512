package repository

import (
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type PositionLotRepository interface {
	Add(tx *sql.Tx, lot model.PositionLot) (*model.PositionLot, error)
	List(portfolioID uuid.UUID) ([]model.PositionLot, error)
}

type positionLotRepositoryHandler struct {
	DB *sql.DB
}

func NewPositionLotRepository(db *sql.DB) PositionLotRepository {
	return positionLotRepositoryHandler{DB: db}
}

// Add inserts a new lot on the caller's transaction. Lots are insert-only;
// there is no update or delete path.
func (h positionLotRepositoryHandler) Add(tx *sql.Tx, lot model.PositionLot) (*model.PositionLot, error) {
	t := table.PositionLot

	lot.CreatedAt = time.Now().UTC()

	query := t.INSERT(t.MutableColumns).MODEL(lot).RETURNING(t.AllColumns)

	out := model.PositionLot{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert position lot: %w", err)
	}

	return &out, nil
}

func (h positionLotRepositoryHandler) List(portfolioID uuid.UUID) ([]model.PositionLot, error) {
	t := table.PositionLot

	query := t.SELECT(t.AllColumns).
		WHERE(t.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(t.PurchaseDate.ASC())

	out := []model.PositionLot{}
	err := query.Query(h.DB, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list position lots: %w", err)
	}

	return out, nil
}
