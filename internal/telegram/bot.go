package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/engine"
	"github.com/TahaPatil2004/TalentScout---AI-Hiring-Assistant/internal/session"
)

const (
	rateLimitPerMinute = 10

	msgRateLimited = "⏳ Too many messages. Please wait a minute and try again."
	msgNoInterview = "No interview in progress. Send /start to begin."
	msgInProgress  = "You already have an interview in progress. Send /status to check " +
		"your progress or /restart to start over."
	msgRestarted = "🔄 Starting a fresh interview.\n\n"
	msgStopped   = "🛑 Interview stopped. Send /start whenever you're ready to try again."
	msgUnknown   = "Unknown command. Send /help for the list of commands."
)

const helpText = `🤖 *TalentScout Hiring Assistant*

I conduct a short screening interview: a few questions about you, then 3-5 technical questions based on your tech stack.

*Commands:*
/start — begin a new interview
/status — check your progress
/restart — discard the current interview and start over
/stop — stop the current interview
/help — show this message

You can also end the interview at any time by typing 'exit' or 'bye'.`

// Bot drives interview sessions over Telegram long polling.
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *engine.Engine
	store   *session.Store
	limiter *RateLimiter
	log     *zap.Logger
}

func New(token string, eng *engine.Engine, store *session.Store, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{
		api:     api,
		engine:  eng,
		store:   store,
		limiter: NewRateLimiter(rateLimitPerMinute, time.Minute),
		log:     log,
	}, nil
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	b.log.Info("telegram bot started", zap.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if !b.limiter.Allow(userID) {
		b.send(chatID, msgRateLimited)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, userID, msg.Command())
		return
	}

	s, err := b.store.Get(userID)
	if err != nil {
		b.send(chatID, msgNoInterview)
		return
	}

	reply := b.engine.HandleInput(ctx, s, text)
	b.send(chatID, reply.Message)

	if reply.Done {
		b.log.Info("interview finished",
			zap.Int64("user_id", userID),
			zap.String("session_id", s.ID),
			zap.Int("answers", len(s.Answers)))
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID, userID int64, command string) {
	switch command {
	case "start":
		b.startInterview(chatID, userID, false)
	case "help":
		b.sendMarkdown(chatID, helpText)
	case "status":
		b.sendStatus(chatID, userID)
	case "restart":
		b.startInterview(chatID, userID, true)
	case "stop":
		b.stopInterview(chatID, userID)
	default:
		b.send(chatID, msgUnknown)
	}
}

func (b *Bot) startInterview(chatID, userID int64, restart bool) {
	if s, err := b.store.Get(userID); err == nil && !s.Done() && !restart {
		b.send(chatID, msgInProgress)
		return
	}

	s := b.store.Create(userID)
	greeting := b.engine.Greet(s)

	b.log.Info("interview started",
		zap.Int64("user_id", userID),
		zap.String("session_id", s.ID))

	if restart {
		greeting = msgRestarted + greeting
	}
	b.send(chatID, greeting)
}

func (b *Bot) sendStatus(chatID, userID int64) {
	s, err := b.store.Get(userID)
	if err != nil {
		b.send(chatID, msgNoInterview)
		return
	}

	if s.Done() {
		b.send(chatID, "✅ Your interview is complete. Thank you! Send /start for a new one.")
		return
	}

	status := fmt.Sprintf("📊 Interview in progress.\n\n"+
		"Current step: %s\n"+
		"Answers recorded: %d",
		stageLabel(s.Stage), len(s.Answers))
	if s.Stage == session.StageQuestionLoop && s.QuestionTotal > 0 {
		status += fmt.Sprintf("\nTechnical questions: %d/%d answered",
			s.QuestionTotal-len(s.Pending), s.QuestionTotal)
	}
	b.send(chatID, status)
}

func (b *Bot) stopInterview(chatID, userID int64) {
	s, err := b.store.Get(userID)
	if err != nil || s.Done() {
		b.send(chatID, msgNoInterview)
		return
	}
	b.store.Delete(userID)
	b.send(chatID, msgStopped)
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func stageLabel(stage session.Stage) string {
	switch stage {
	case session.StageGreeting, session.StageCollectName:
		return "collecting your name"
	case session.StageCollectEmail:
		return "collecting your email"
	case session.StageCollectPhone:
		return "collecting your phone number"
	case session.StageCollectExperience:
		return "collecting your experience"
	case session.StageCollectPosition:
		return "collecting your desired position"
	case session.StageCollectLocation:
		return "collecting your location"
	case session.StageCollectTechStack:
		return "collecting your tech stack"
	case session.StageGenerateQuestions, session.StageQuestionLoop:
		return "technical questions"
	case session.StageSummary:
		return "reviewing your summary"
	default:
		return string(stage)
	}
}
