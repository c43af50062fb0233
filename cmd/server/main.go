// Package main is the entry point for the flight search chatbot service.
//
//	@title						Flight Search Chatbot API
//	@version					1.0.0
//	@description				A conversational flight search service that walks users through a guided questionnaire and searches live flight offers.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-chat/flight-search-chatbot/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-chat/flight-search-chatbot/docs"

	// Application layers
	"github.com/flight-chat/flight-search-chatbot/internal/adapter/airports"
	"github.com/flight-chat/flight-search-chatbot/internal/adapter/amadeus"
	"github.com/flight-chat/flight-search-chatbot/internal/adapter/cards"
	chathttp "github.com/flight-chat/flight-search-chatbot/internal/adapter/http"
	"github.com/flight-chat/flight-search-chatbot/internal/adapter/http/middleware"
	"github.com/flight-chat/flight-search-chatbot/internal/adapter/recognizer"
	"github.com/flight-chat/flight-search-chatbot/internal/config"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/logger"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/sessionstore"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/timeutil"
	"github.com/flight-chat/flight-search-chatbot/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-chatbot",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	rdb := setupRoutes(e, cfg, log)
	defer rdb.Close()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the application layers and registers the HTTP routes.
// It returns the redis client so main can close it on shutdown.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) *redis.Client {
	// Session store backed by redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := sessionstore.NewRedisStore(rdb, cfg.Redis.SessionTTL)

	// Collaborators
	airportClient := airports.NewClient(cfg.Airports.BaseURL, log,
		airports.WithHTTPClient(&http.Client{Timeout: cfg.Airports.Timeout}))
	offersClient := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		AuthURL:      cfg.Amadeus.AuthURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		MaxResults:   cfg.Amadeus.MaxResults,
	}, log, amadeus.WithHTTPClient(&http.Client{Timeout: cfg.Amadeus.Timeout}))
	dates := recognizer.New()

	// Card rendering with the configured deep-link market
	renderer := cards.NewRenderer(cards.DeepLinkConfig{
		BaseURL:  cfg.Deeplink.BaseURL,
		Country:  cfg.Deeplink.Country,
		Currency: cfg.Deeplink.Currency,
		Locale:   cfg.Deeplink.Locale,
	})

	// Use cases
	engine := usecase.NewEngine(store, airportClient, dates, renderer,
		timeutil.NewRealClock(), log,
		&usecase.Config{MaxAirportChoices: cfg.App.MaxAirportChoices})
	offers := usecase.NewOffersUseCase(store, offersClient, log)

	// Handler and routes
	handler := chathttp.NewChatHandler(engine, offers)
	chathttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return rdb
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
