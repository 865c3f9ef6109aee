package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "pocket-budget/docs"
	"pocket-budget/middleware"
)

// RouterOptions configures SetupRouter
type RouterOptions struct {
	// APIToken protects /api/v1
	APIToken string
	// DisableAuth serves /api/v1 without the token check
	DisableAuth bool
	Logger      zerolog.Logger
}

// SetupRouter sets up the router
func SetupRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(opts.Logger),
	)

	// Serve Swagger UI at root path
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	if !opts.DisableAuth {
		api.Use(middleware.AuthMiddleware(opts.APIToken))
	}
	{
		b := api.Group("/budget")
		{
			b.GET("", handler.GetBudget)
			b.PUT("/starting-balance", handler.SetStartingBalance)
			b.GET("/stream", handler.StreamBudget)
		}

		tx := api.Group("/transactions")
		{
			tx.GET("", handler.ListTransactions)
			tx.POST("", handler.CreateTransaction)
		}

		form := api.Group("/form")
		{
			form.GET("", handler.GetForm)
			form.PATCH("", handler.UpdateForm)
			form.POST("/submit", handler.SubmitForm)
		}
	}

	return router
}
