package api

import (
	"github.com/gin-gonic/gin"
)

type tickerListItem struct {
	Symbol      string  `json:"symbol"`
	CompanyName *string `json:"companyName,omitempty"`
}

type tickersResponse struct {
	Tickers []tickerListItem `json:"tickers"`
}

func (h ApiHandler) tickers(c *gin.Context) {
	tickers, err := h.TickerRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := tickersResponse{
		Tickers: []tickerListItem{},
	}
	for _, t := range tickers {
		out.Tickers = append(out.Tickers, tickerListItem{
			Symbol:      t.Symbol,
			CompanyName: t.CompanyName,
		})
	}

	c.JSON(200, out)
}
