package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/service"
)

// advanceEvent asks the event loop to show the next geography question.
type advanceEvent struct {
	chatID int64
	ref    gameRef
}

type Handler struct {
	bot         BotAPI
	logger      *zap.Logger
	games       GameFactory
	geoGames    SessionStore[*service.GeographyQuiz]
	engGames    SessionStore[*service.EnglishDrill]
	answerDelay time.Duration

	advance chan advanceEvent
	done    chan struct{}
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	games GameFactory,
	geoGames SessionStore[*service.GeographyQuiz],
	engGames SessionStore[*service.EnglishDrill],
	answerDelay time.Duration,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		games:       games,
		geoGames:    geoGames,
		engGames:    engGames,
		answerDelay: answerDelay,
		advance:     make(chan advanceEvent, 16),
		done:        make(chan struct{}),
	}
}

// Run is the event loop. Every game is mutated on this goroutine only:
// updates and auto-advance timers are both handled here.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")
	defer close(h.done)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		case ev := <-h.advance:
			_ = h.withErrorHandling(h.handleAdvance(ev))(ctx, ev.chatID)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		_ = h.withErrorHandling(h.handleCommand(update.Message.Command()))(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleText(update.Message.Text))(ctx, chatID)
}

func (h *Handler) handleCommand(command string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch command {
		case "start":
			return h.send(withKeyboard(newMessage(chatID, welcomeMessage()), buildHomeKeyboard()))
		case "help":
			return h.send(newMessage(chatID, helpMessage()))
		case "geo":
			return h.showGeoMenu(chatID, 0)
		case "eng":
			return h.showEngMenu(chatID, 0)
		case "review":
			return h.reviewGeo(chatID, "")
		case "end":
			return h.endGeo(chatID, "")
		default:
			return h.send(newPlainMessage(chatID, msgUnknownCommand))
		}
	}
}

// handleText treats "1".."9" as an answer to the current geography question.
func (h *Handler) handleText(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n < 1 || n > 9 {
			return h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		quiz, ok := h.geoGames.Get(chatID)
		if !ok || quiz.Session() == nil || !quiz.Session().IsActive() {
			return service.ErrNoActiveGame
		}

		s := quiz.Session()
		return h.answerGeo(chatID, 0, gameRef{SessionID: s.ID, Seq: s.Seq}, n-1)
	}
}

// scheduleAdvance posts an advance event for ref after the answer delay.
func (h *Handler) scheduleAdvance(chatID int64, ref gameRef) {
	ev := advanceEvent{chatID: chatID, ref: ref}
	time.AfterFunc(h.answerDelay, func() {
		select {
		case h.advance <- ev:
		case <-h.done:
		}
	})
}

func (h *Handler) handleAdvance(ev advanceEvent) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		quiz, ok := h.geoGames.Get(chatID)
		if !ok || !quiz.IsCurrent(ev.ref.SessionID, ev.ref.Seq) {
			return nil
		}
		return h.nextGeo(chatID, quiz)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// answerCallback removes the loading state of a button, with an optional toast.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Warn("failed to answer callback",
			zap.String("callback_id", cb.ID),
			zap.Error(err),
		)
	}
}
