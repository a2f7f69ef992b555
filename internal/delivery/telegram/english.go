package telegram

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/service"
)

func (h *Handler) showEngMenu(chatID int64, msgID int) error {
	if err := h.games.EnglishReady(); err != nil {
		h.logger.Warn("english dataset unavailable",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return h.send(newPlainMessage(chatID, msgEngUnavailable))
	}

	kb := buildEngMenuKeyboard()
	return h.render(chatID, msgID, engMenuMessage(), &kb)
}

func (h *Handler) startEng(chatID int64, msgID int, mode entities.ExerciseMode) error {
	if err := h.games.EnglishReady(); err != nil {
		return h.send(newPlainMessage(chatID, msgEngUnavailable))
	}

	drill := h.engGames.GetOrCreate(chatID, h.games.NewEnglishDrill)
	if _, err := drill.Start(mode); err != nil {
		return err
	}

	h.logger.Info("english drill started",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", drill.ID()),
		zap.String("mode", string(mode)),
	)

	return h.renderExercise(chatID, msgID, drill, "")
}

// boardOp applies a button press to the exercise identified by ref.
// Presses that change nothing leave the message untouched.
func (h *Handler) boardOp(chatID int64, msgID int, ref gameRef, op string, value int) error {
	drill, ok := h.engGames.Get(chatID)
	if !ok || drill.Current() == nil {
		return service.ErrNoExercise
	}
	if !drill.IsCurrent(ref.SessionID, ref.Seq) {
		return service.ErrStaleQuestion
	}
	h.engGames.Touch(chatID)

	e := drill.Current()
	status := ""

	switch op {
	case engTile:
		if !e.PlaceTile(value) {
			return nil
		}
	case engBlank:
		if !e.ClearBlank(value) {
			return nil
		}
	case engPlaced:
		if !e.UnplaceTile(value) {
			return nil
		}
	case engReset:
		if e.Solved || (len(e.Placed) == 0 && !anyFilled(e.Blanks)) {
			return nil
		}
		e.Reset()
	case engCheck:
		res, err := drill.Check()
		if err != nil {
			return err
		}
		status = formatDrillStatus(res)
	case engNext:
		if _, err := drill.Next(); err != nil {
			return err
		}
	}

	return h.renderExercise(chatID, msgID, drill, status)
}

func (h *Handler) renderExercise(chatID int64, msgID int, drill *service.EnglishDrill, status string) error {
	e := drill.Current()
	ref := gameRef{SessionID: drill.ID(), Seq: drill.Seq()}

	kb := buildExerciseKeyboard(e, ref)
	return h.render(chatID, msgID, formatExercise(e, status), &kb)
}

func anyFilled(blanks []entities.Blank) bool {
	for _, b := range blanks {
		if !b.IsEmpty() {
			return true
		}
	}
	return false
}
