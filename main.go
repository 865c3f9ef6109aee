package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"pocket-budget/api"
	"pocket-budget/budget"
	"pocket-budget/config"
	"pocket-budget/logger"
	"pocket-budget/period"
	"pocket-budget/seed"
	"pocket-budget/store"
)

// @title Pocket Budget API
// @version 1.0
// @description Budget totals, ending balance and transaction entry for a single budgeting session.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8880
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", false)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Period tag stamped on new entries, rolled on schedule
	clock := period.NewClock(time.Now)
	if err := clock.Start(cfg.PeriodSchedule, func(tag string) {
		log.Info().Str("period", tag).Msg("Pay period rolled over")
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to start period clock")
	}
	defer clock.Stop()

	budgetStore := store.New(store.Options{
		StartingBalance: cfg.StartingBalanceDecimal(),
		PeriodTag:       clock.Current,
	})
	budgetStore.Subscribe(logChanges(log))

	if cfg.SeedDemo {
		if err := seed.Load(budgetStore, time.Now(), clock.Current()); err != nil {
			log.Fatal().Err(err).Msg("Failed to load demo data")
		}
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(budgetStore, budget.NewFormatter(cfg.CurrencySymbol))
	router := api.SetupRouter(handler, api.RouterOptions{
		APIToken:    cfg.APIToken,
		DisableAuth: !cfg.AuthEnabled(),
		Logger:      log,
	})
	if !cfg.AuthEnabled() {
		log.Warn().Msg("AUTH_DISABLED is set: /api/v1 accepts unauthenticated requests")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
	})

	// Cancelled on shutdown so open snapshot streams end
	baseCtx, stopStreams := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(stopStreams)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Bool("auth", cfg.AuthEnabled()).
			Str("period", clock.Current()).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// logChanges logs the derived totals after every accepted change
func logChanges(log zerolog.Logger) store.Listener {
	return func(st store.State) {
		snap := budget.Summarize(st.StartingBalance, st.Transactions)
		log.Debug().
			Int("transactions", len(st.Transactions)).
			Str("income_total", snap.IncomeTotal.StringFixed(2)).
			Str("expense_total", snap.ExpenseTotal.StringFixed(2)).
			Str("ending_balance", snap.EndingBalance.StringFixed(2)).
			Msg("Budget updated")
	}
}
