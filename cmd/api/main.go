package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealership-assistant/config"
	bookingSqlite "dealership-assistant/internal/booking/repository/sqlite"
	bookingUsecase "dealership-assistant/internal/booking/usecase"
	catalogJsonfile "dealership-assistant/internal/catalog/repository/jsonfile"
	catalogUsecase "dealership-assistant/internal/catalog/usecase"
	dialogueHTTP "dealership-assistant/internal/dialogue/delivery/http"
	"dealership-assistant/internal/dialogue/session"
	dialogueUsecase "dealership-assistant/internal/dialogue/usecase"
	"dealership-assistant/internal/httpserver"
	"dealership-assistant/internal/middleware"
	"dealership-assistant/internal/nlu"
	"dealership-assistant/pkg/datemath"
	"dealership-assistant/pkg/llmprovider"
	"dealership-assistant/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dealership Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Dealership: %s (%s)", cfg.Dealership.Name, cfg.Dealership.Timezone)

	// 3. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Dealership.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dealership.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 5. Catalog domain
	vehicleRepo, err := catalogJsonfile.New(logger, cfg.Catalog.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to load vehicle catalog: %v", err)
		return
	}
	catalogUC := catalogUsecase.New(logger, vehicleRepo)

	// 6. Booking domain
	bookingRepo, err := bookingSqlite.Open(cfg.Booking.DatabasePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open booking database: %v", err)
		return
	}
	defer bookingRepo.Close()
	bookingUC := bookingUsecase.New(
		logger,
		bookingRepo,
		dateMathParser,
		cfg.Dealership.OpenHour,
		cfg.Dealership.CloseHour,
		cfg.Dealership.BufferMinutes,
		cfg.Dealership.CandidateHours,
	)

	// 7. Dialogue domain
	nluEngine := nlu.New(logger, llmManager)
	dialogueUC := dialogueUsecase.New(logger, nluEngine, catalogUC, bookingUC, dateMathParser)

	sessions, err := session.NewStore(cfg.Session.MaxSessions, cfg.Session.MaxHistory)
	if err != nil {
		logger.Errorf(ctx, "Failed to create session store: %v", err)
		return
	}

	// 8. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)
	dialogueHandler := dialogueHTTP.New(logger, dialogueUC, catalogUC, bookingUC, sessions)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		DialogueHandler: dialogueHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
		return
	}

	logger.Info(ctx, "Shutdown complete")
}

// parseDuration reads a config duration string, falling back on bad input.
func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
