package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/config"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/engine"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/logger"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/metrics"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/session"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/telegram"
)

func main() {
	_ = godotenv.Load()

	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("loading environment: %v", err)
	}

	logg, err := logger.New(appCfg.LogJSON, appCfg.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %v", err)
	}
	defer logg.Sync()

	if appCfg.TelegramBotToken == "" {
		logg.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	if err := appCfg.ValidateAI(); err != nil {
		logg.Fatal("AI provider misconfigured", zap.Error(err))
	}

	cfg, err := config.Load(appCfg.InterviewConfigPath)
	if err != nil {
		logg.Warn("interview policy not loaded, using defaults",
			zap.String("path", appCfg.InterviewConfigPath), zap.Error(err))
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ai.NewClient(ctx, appCfg.AIProvider, appCfg.ProviderAPIKey(),
		appCfg.OpenAIBaseURL, appCfg.ProviderModel())
	if err != nil {
		logg.Fatal("creating AI client", zap.Error(err))
	}

	adapter := ai.NewAdapter(client, cfg.AITimeout(), logg)
	m := metrics.New()
	eng := engine.New(adapter, cfg, m, logg)
	store := session.NewStore()

	bot, err := telegram.New(appCfg.TelegramBotToken, eng, store, logg)
	if err != nil {
		logg.Fatal("creating telegram bot", zap.Error(err))
	}

	go cleanupLoop(ctx, store, cfg.SessionMaxAge(), logg)

	logg.Info("starting the hiring assistant",
		zap.String("provider", appCfg.AIProvider),
		zap.Duration("ai_timeout", cfg.AITimeout()))

	bot.Start(ctx)

	snapshot := m.GetSnapshot()
	logg.Info("shutdown complete",
		zap.Int("live_sessions", store.Count()),
		zap.Int64("sessions_started", snapshot.SessionsStarted),
		zap.Int64("sessions_completed", snapshot.SessionsCompleted),
		zap.Int64("sessions_abandoned", snapshot.SessionsAbandoned),
		zap.Int64("ai_calls", snapshot.AICallsTotal),
		zap.Int64("ai_fallbacks", snapshot.AIFallbacks))
}

func cleanupLoop(ctx context.Context, store *session.Store, maxAge time.Duration, logg *zap.Logger) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.CleanupInactive(maxAge); removed > 0 {
				logg.Info("removed inactive sessions", zap.Int("count", removed))
			}
		}
	}
}
