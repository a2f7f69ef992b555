package telegram

import (
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/service"
)

const msgGameEnded = "퀴즈를 종료했습니다."

func (h *Handler) showGeoMenu(chatID int64, msgID int) error {
	if err := h.games.GeographyReady(); err != nil {
		h.logger.Warn("geography dataset unavailable",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return h.send(newPlainMessage(chatID, msgGeoUnavailable))
	}

	kb := buildGeoMenuKeyboard()
	return h.render(chatID, msgID, geoMenuMessage(), &kb)
}

// geoQuiz returns the chat's game, creating it on first use.
func (h *Handler) geoQuiz(chatID int64) *service.GeographyQuiz {
	return h.geoGames.GetOrCreate(chatID, h.games.NewGeographyQuiz)
}

// activeGeoQuiz returns the chat's game if sessionID is empty or names its current session.
func (h *Handler) activeGeoQuiz(chatID int64, sessionID string) (*service.GeographyQuiz, error) {
	quiz, ok := h.geoGames.Get(chatID)
	if !ok || quiz.Session() == nil {
		return nil, service.ErrNoActiveGame
	}
	if sessionID != "" && quiz.Session().ID != sessionID {
		return nil, service.ErrStaleQuestion
	}
	h.geoGames.Touch(chatID)
	return quiz, nil
}

func (h *Handler) startGeo(chatID int64, kind entities.QuestionKind) error {
	if err := h.games.GeographyReady(); err != nil {
		return h.send(newPlainMessage(chatID, msgGeoUnavailable))
	}

	quiz := h.geoQuiz(chatID)
	q, err := quiz.StartGame(kind)
	if err != nil {
		return err
	}

	h.logger.Info("geography game started",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", quiz.Session().ID),
		zap.String("kind", string(kind)),
	)

	return h.sendGeoQuestion(chatID, quiz, q)
}

func (h *Handler) sendGeoQuestion(chatID int64, quiz *service.GeographyQuiz, q *entities.Question) error {
	s := quiz.Session()
	ref := gameRef{SessionID: s.ID, Seq: s.Seq}

	kb := buildGeoQuestionKeyboard(q, ref)
	return h.render(chatID, 0, formatGeoQuestion(s, q), &kb)
}

// answerGeo checks option of the question identified by ref. The verdict
// replaces the question message msgID, or is sent as a new message when msgID is 0.
func (h *Handler) answerGeo(chatID int64, msgID int, ref gameRef, option int) error {
	quiz, err := h.activeGeoQuiz(chatID, ref.SessionID)
	if err != nil {
		return err
	}
	if !quiz.IsCurrent(ref.SessionID, ref.Seq) {
		return service.ErrStaleQuestion
	}

	res, err := quiz.CheckOption(option)
	if err != nil {
		return err
	}

	s := quiz.Session()
	head := formatGeoQuestion(s, s.Current) + "\n\n"
	text := head + formatGeoFeedback(res, maxMessageLen-len(head))

	if res.AutoAdvance {
		h.scheduleAdvance(chatID, ref)
		return h.render(chatID, msgID, text, nil)
	}

	kb := buildGeoAfterWrongKeyboard(ref)
	return h.render(chatID, msgID, text, &kb)
}

// advanceGeo shows the next question if ref is still the one on screen.
func (h *Handler) advanceGeo(chatID int64, ref gameRef) error {
	quiz, err := h.activeGeoQuiz(chatID, ref.SessionID)
	if err != nil {
		return err
	}
	if !quiz.IsCurrent(ref.SessionID, ref.Seq) {
		return service.ErrStaleQuestion
	}
	return h.nextGeo(chatID, quiz)
}

func (h *Handler) nextGeo(chatID int64, quiz *service.GeographyQuiz) error {
	q, err := quiz.LoadNewQuestion()
	switch {
	case err == nil:
		return h.sendGeoQuestion(chatID, quiz, q)
	case errors.Is(err, service.ErrReviewFinished):
		return h.sendGeoSummary(chatID, quiz, msgReviewDone)
	case errors.Is(err, service.ErrPoolExhausted):
		return h.sendGeoSummary(chatID, quiz, msgAllQuestionsDone)
	default:
		return err
	}
}

func (h *Handler) endGeo(chatID int64, sessionID string) error {
	quiz, err := h.activeGeoQuiz(chatID, sessionID)
	if err != nil {
		return err
	}

	if _, err := quiz.EndGame(); err != nil {
		return err
	}
	return h.sendGeoSummary(chatID, quiz, msgGameEnded)
}

func (h *Handler) sendGeoSummary(chatID int64, quiz *service.GeographyQuiz, headline string) error {
	s := quiz.Session()
	sum := s.Summary()

	h.logger.Info("geography game finished",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", s.ID),
		zap.Int("score", sum.Score),
		zap.Int("question_count", sum.QuestionCount),
	)

	kb := buildGeoSummaryKeyboard(s.ID, sum)
	return h.render(chatID, 0, formatSummary(sum, headline), &kb)
}

func (h *Handler) reviewGeo(chatID int64, sessionID string) error {
	quiz, err := h.activeGeoQuiz(chatID, sessionID)
	if err != nil {
		return err
	}

	q, err := quiz.ShowReview()
	if err != nil {
		return err
	}
	return h.sendGeoQuestion(chatID, quiz, q)
}

func (h *Handler) restartGeo(chatID int64, msgID int) error {
	if quiz, ok := h.geoGames.Get(chatID); ok {
		quiz.RestartGame()
	}

	// Drop the summary keyboard so its review button cannot be pressed again.
	if msgID != 0 {
		empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
		if err := h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, msgID, empty)); err != nil {
			h.logger.Debug("failed to remove summary keyboard",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", msgID),
				zap.Error(err),
			)
		}
	}
	return h.showGeoMenu(chatID, 0)
}
