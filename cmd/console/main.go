// Console runner for the interview engine. Useful for trying prompts and
// policies without a Telegram token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/ai"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/config"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/engine"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/logger"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/metrics"
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

	if err := appCfg.ValidateAI(); err != nil {
		logg.Fatal("AI provider misconfigured", zap.Error(err))
	}

	cfg, err := config.Load(appCfg.InterviewConfigPath)
	if err != nil {
		logg.Warn("interview policy not loaded, using defaults", zap.Error(err))
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
	eng := engine.New(adapter, cfg, metrics.New(), logg)

	s, greeting := eng.StartSession()
	fmt.Printf("\n🤖 %s\n\n", greeting)

	prompt := promptui.Prompt{Label: "You"}
	for {
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("\nGoodbye!")
				return
			}
			logg.Fatal("reading input", zap.Error(err))
		}

		reply := eng.HandleInput(ctx, s, input)
		fmt.Printf("\n🤖 %s\n\n", reply.Message)

		if reply.Done {
			return
		}
	}
}
