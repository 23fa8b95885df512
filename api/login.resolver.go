package api

import (
	"errors"
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserAccountID string `json:"userAccountID"`
	Username      string `json:"username"`
	Token         string `json:"token"`
}

func (h ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	account, err := h.UserService.Authenticate(requestBody.Email, requestBody.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			returnErrorJsonCode(err, c, 401)
			return
		}
		returnErrorJson(err, c)
		return
	}

	token, err := issueSessionToken(h.JwtSecret, account.UserAccountID, account.Email)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, loginResponse{
		UserAccountID: account.UserAccountID.String(),
		Username:      account.Username,
		Token:         token,
	})
}
