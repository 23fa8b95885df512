package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type premiumStatusResponse struct {
	IsPremium bool `json:"isPremium"`
}

func (h ApiHandler) premiumStatus(c *gin.Context) {
	userAccountID, ok := userAccountIDFromContext(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("not authenticated"), c, 401)
		return
	}

	isPremium, err := h.UserService.IsPremium(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, premiumStatusResponse{IsPremium: isPremium})
}
