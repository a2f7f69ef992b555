package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb, "")
		return
	}

	msgID := cb.Message.MessageID
	cd := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch cd.Action {
	case actionMenu:
		fn = h.handleMenuCallback(cd, msgID)
	case actionGeo:
		fn = h.handleGeoCallback(cd, msgID)
	case actionEng:
		fn = h.handleEngCallback(cd, msgID)
	default:
		h.logger.Warn("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb, "")
		return
	}

	h.withCallbackHandling(ctx, cb, fn)
}

func (h *Handler) handleMenuCallback(cd callbackData, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch cd.sub() {
		case menuHome:
			kb := buildHomeKeyboard()
			return h.render(chatID, msgID, welcomeMessage(), &kb)
		case menuGeo:
			return h.showGeoMenu(chatID, msgID)
		case menuEng:
			return h.showEngMenu(chatID, msgID)
		default:
			return errMalformedCallback
		}
	}
}

func (h *Handler) handleGeoCallback(cd callbackData, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch cd.sub() {
		case geoStart:
			return h.startGeo(chatID, entities.QuestionKind(cd.param(1)))
		case geoReview:
			return h.reviewGeo(chatID, cd.param(1))
		case geoRestart:
			return h.restartGeo(chatID, msgID)
		}

		ref, ok := cd.ref()
		if !ok {
			return errMalformedCallback
		}

		switch cd.sub() {
		case geoAnswer:
			option, ok := cd.intParam(3)
			if !ok {
				return errMalformedCallback
			}
			return h.answerGeo(chatID, msgID, ref, option)
		case geoNext:
			return h.advanceGeo(chatID, ref)
		case geoEnd:
			return h.endGeo(chatID, ref.SessionID)
		default:
			return errMalformedCallback
		}
	}
}

func (h *Handler) handleEngCallback(cd callbackData, msgID int) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if cd.sub() == engStart {
			return h.startEng(chatID, msgID, entities.ExerciseMode(cd.param(1)))
		}

		ref, ok := cd.ref()
		if !ok {
			return errMalformedCallback
		}

		value, hasValue := cd.intParam(3)
		switch cd.sub() {
		case engTile, engBlank, engPlaced:
			if !hasValue {
				return errMalformedCallback
			}
		case engCheck, engReset, engNext:
		default:
			return errMalformedCallback
		}

		return h.boardOp(chatID, msgID, ref, cd.sub(), value)
	}
}

// render sends a new message when msgID is 0 and edits msgID otherwise.
// A nil kb removes the keyboard of an edited message.
func (h *Handler) render(chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	if msgID == 0 {
		msg := newMessage(chatID, text)
		if kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}

	edit := newEdit(chatID, msgID, text)
	edit.ReplyMarkup = kb
	return h.send(edit)
}
