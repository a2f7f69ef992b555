package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/service"
)

var errMalformedCallback = errors.New("malformed callback data")

type HandlerFunc func(ctx context.Context, chatID int64) error

// gameErrorText maps the errors a player can cause to the text shown to them.
func gameErrorText(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrStaleQuestion),
		errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, errMalformedCallback):
		return msgStaleButton, true
	case errors.Is(err, service.ErrAlreadyAnswered), errors.Is(err, service.ErrAlreadySolved):
		return msgAlreadyAnswered, true
	case errors.Is(err, service.ErrInvalidOption):
		return msgInvalidOption, true
	case errors.Is(err, service.ErrNoActiveGame), errors.Is(err, service.ErrNoExercise):
		return msgNoActiveGame, true
	case errors.Is(err, service.ErrNoWrongAnswers):
		return msgNoWrongAnswers, true
	case errors.Is(err, service.ErrGameInProgress):
		return msgReviewAfterEnd, true
	case errors.Is(err, service.ErrNoQuestions), errors.Is(err, service.ErrNoSentences):
		return msgNoQuestions, true
	}
	return "", false
}

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		if text, ok := gameErrorText(err); ok {
			h.logger.Debug("game rejected input",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			_ = h.send(newPlainMessage(chatID, text))
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		_ = h.send(newPlainMessage(chatID, msgInternalError))
		return nil
	}
}

// withCallbackHandling runs fn for a button press and always answers the
// callback. Expected game errors become a toast instead of a message.
func (h *Handler) withCallbackHandling(ctx context.Context, cb *tgbotapi.CallbackQuery, fn HandlerFunc) {
	chatID := cb.Message.Chat.ID

	err := fn(ctx, chatID)
	if err == nil {
		h.answerCallback(cb, "")
		return
	}

	if text, ok := gameErrorText(err); ok {
		h.logger.Debug("game rejected button",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.answerCallback(cb, text)
		return
	}

	h.logger.Error("handle callback error",
		zap.Int64("chat_id", chatID),
		zap.String("data", cb.Data),
		zap.Error(err),
	)
	h.answerCallback(cb, "")
	_ = h.send(newPlainMessage(chatID, msgInternalError))
}
