package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Symbol   string `json:"symbol"`
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

func (h ApiHandler) chat(c *gin.Context) {
	var requestBody chatRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	symbol := strings.ToUpper(strings.TrimSpace(requestBody.Symbol))
	question := strings.TrimSpace(requestBody.Question)
	if symbol == "" || question == "" {
		returnErrorJsonCode(fmt.Errorf("symbol and question are required"), c, 400)
		return
	}

	answer, err := h.GptRepository.AskFilings(c.Request.Context(), symbol, question)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, chatResponse{Answer: answer})
}
