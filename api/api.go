package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"
	"stockfolio/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ApiHandler struct {
	Db                   *sql.DB
	RedisClient          *redis.Client
	JwtSecret            string
	UserService          service.UserService
	PortfolioService     service.PortfolioService
	LeaderboardService   service.LeaderboardService
	TickerRepository     repository.TickerRepository
	PriceRepository      repository.PriceRepository
	GptRepository        repository.GptRepository
	ApiRequestRepository repository.ApiRequestRepository
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockfolio"})
	})
	router.POST("/signup", m.signup)
	router.POST("/login", m.login)
	router.POST("/leaderboard", m.leaderboard)
	router.POST("/priceRange", m.priceRange)
	router.GET("/tickers", m.tickers)
	router.POST("/chat", m.chat)

	authed := router.Group("/", authMiddleware(m.JwtSecret))
	authed.POST("/portfolios", m.getPortfolios)
	authed.POST("/portfolio/performance", m.portfolioPerformance)
	authed.POST("/portfolio/holdings", m.portfolioHoldings)
	authed.POST("/portfolio/history", m.portfolioHistory)
	authed.POST("/positions/add", m.addPosition)
	authed.POST("/premium", m.premiumStatus)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Warn("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		// the auth middleware runs after this one, so the caller is only
		// known once the handler chain has finished
		if id, ok := userAccountIDFromContext(ctx); ok {
			req.UserAccountID = util.UUIDPointer(id)
		}
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.Warn("failed to update api request: %v", err)
		}
	}
}

func userAccountIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(userAccountIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
