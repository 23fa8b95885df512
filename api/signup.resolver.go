package api

import (
	"errors"
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupResponse struct {
	UserAccountID string `json:"userAccountID"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	Token         string `json:"token"`
}

func (h ApiHandler) signup(c *gin.Context) {
	var requestBody signupRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	account, err := h.UserService.Register(requestBody.Email, requestBody.Username, requestBody.Password)
	if err != nil {
		code := 500
		if errors.Is(err, service.ErrUserExists) || errors.Is(err, service.ErrWeakPassword) {
			code = 400
		}
		returnErrorJsonCode(err, c, code)
		return
	}

	token, err := issueSessionToken(h.JwtSecret, account.UserAccountID, account.Email)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, signupResponse{
		UserAccountID: account.UserAccountID.String(),
		Email:         account.Email,
		Username:      account.Username,
		Token:         token,
	})
}
