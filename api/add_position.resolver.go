package api

import (
	"errors"
	"fmt"
	"time"

	"stockfolio/internal/repository"
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type addPositionRequest struct {
	Portfolio    string          `json:"portfolio"`
	IsPublic     bool            `json:"isPublic"`
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	PurchaseDate string          `json:"purchaseDate"`
}

type addPositionResponse struct {
	PositionLotID string          `json:"positionLotID"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	PurchaseDate  string          `json:"purchaseDate"`
}

func (h ApiHandler) addPosition(c *gin.Context) {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("not authenticated"), c, 401)
		return
	}

	var requestBody addPositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	purchaseDate, err := time.Parse(time.DateOnly, requestBody.PurchaseDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid purchase date: %w", err), c, 400)
		return
	}

	lot, err := h.PortfolioService.AddLot(c.Request.Context(), userAccountID, service.AddLotInput{
		PortfolioName: requestBody.Portfolio,
		IsPublic:      requestBody.IsPublic,
		Symbol:        requestBody.Symbol,
		Quantity:      requestBody.Quantity,
		UnitPrice:     requestBody.UnitPrice,
		PurchaseDate:  purchaseDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLot),
			errors.Is(err, service.ErrPriceOutOfRange),
			errors.Is(err, repository.ErrNoPriceData):
			returnErrorJsonCode(err, c, 400)
		default:
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, addPositionResponse{
		PositionLotID: lot.PositionLotID.String(),
		Symbol:        lot.Symbol,
		Quantity:      lot.Quantity,
		UnitPrice:     lot.UnitPrice,
		TotalPrice:    lot.TotalPrice,
		PurchaseDate:  lot.PurchaseDate.Format(time.DateOnly),
	})
}
