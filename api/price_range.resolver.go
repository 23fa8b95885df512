package api

import (
	"errors"
	"fmt"
	"time"

	"stockfolio/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type priceRangeRequest struct {
	Symbol string `json:"symbol"`
	Date   string `json:"date"`
}

type priceRangeResponse struct {
	Symbol string          `json:"symbol"`
	Date   string          `json:"date"`
	Low    decimal.Decimal `json:"low"`
	High   decimal.Decimal `json:"high"`
}

func (h ApiHandler) priceRange(c *gin.Context) {
	var requestBody priceRangeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	date, err := time.Parse(time.DateOnly, requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
		return
	}

	dayRange, err := h.PriceRepository.DayRange(requestBody.Symbol, date)
	if err != nil {
		if errors.Is(err, repository.ErrNoPriceData) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, priceRangeResponse{
		Symbol: dayRange.Symbol,
		Date:   dayRange.Date.Format(time.DateOnly),
		Low:    dayRange.Low,
		High:   dayRange.High,
	})
}
