package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// tilesPerRow is the width of the word bank keyboard.
const tilesPerRow = 3

// buildHomeKeyboard builds keyboard for the start screen.
func buildHomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌍 지리 퀴즈", buildMenuCallback(menuGeo)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 영어 문장 연습", buildMenuCallback(menuEng)),
		),
	)
}

// buildGeoMenuKeyboard builds keyboard for choosing the question kind.
func buildGeoMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				kindLabel(entities.QuestionKindFactToCountry),
				buildGeoStartCallback(string(entities.QuestionKindFactToCountry)),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				kindLabel(entities.QuestionKindCountryToFact),
				buildGeoStartCallback(string(entities.QuestionKindCountryToFact)),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« 처음으로", buildMenuCallback(menuHome)),
		),
	)
}

// buildGeoQuestionKeyboard builds a row of numbered option buttons plus an end button.
// Options can be long facts, so the text lists them and the buttons carry numbers.
func buildGeoQuestionKeyboard(q *entities.Question, ref gameRef) tgbotapi.InlineKeyboardMarkup {
	options := make([]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for i := range q.Options {
		options = append(options, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d", i+1), buildGeoAnswerCallback(ref, i)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		options,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ 게임 종료", buildGeoEndCallback(ref)),
		),
	)
}

// buildGeoAfterWrongKeyboard is shown under the fact sheet of a wrong answer.
func buildGeoAfterWrongKeyboard(ref gameRef) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("다음 문제 ▶️", buildGeoNextCallback(ref)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ 게임 종료", buildGeoEndCallback(ref)),
		),
	)
}

// buildGeoSummaryKeyboard offers the review only while there is something to review.
func buildGeoSummaryKeyboard(sessionID string, sum entities.Summary) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if sum.WrongCount > 0 && !sum.ReviewCompleted {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📒 오답 노트", buildGeoReviewCallback(sessionID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 다시 시작", buildGeoRestartCallback()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildEngMenuKeyboard builds keyboard for choosing the exercise mode.
func buildEngMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	modes := []entities.ExerciseMode{
		entities.ExerciseModeFillBlank,
		entities.ExerciseModeOrderTranslated,
		entities.ExerciseModeOrderBlind,
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(modes)+1)
	for _, m := range modes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(modeLabel(m), buildEngStartCallback(string(m))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« 처음으로", buildMenuCallback(menuHome)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildExerciseKeyboard builds the board controls: filled blanks or placed
// words (tap to take back), the word bank, and the action row.
func buildExerciseKeyboard(e *entities.Exercise, ref gameRef) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if !e.Solved {
		var taken []tgbotapi.InlineKeyboardButton
		if e.Mode.IsOrdering() {
			for pos, word := range e.PlacedWords() {
				taken = append(taken, tgbotapi.NewInlineKeyboardButtonData("✖ "+word, buildEngBoardCallback(engPlaced, ref, pos)))
			}
		} else {
			for pos, b := range e.Blanks {
				if !b.IsEmpty() {
					taken = append(taken, tgbotapi.NewInlineKeyboardButtonData("✖ "+b.Filled, buildEngBoardCallback(engBlank, ref, pos)))
				}
			}
		}
		rows = append(rows, chunkButtons(taken, tilesPerRow)...)

		var bank []tgbotapi.InlineKeyboardButton
		for _, t := range e.BankTiles() {
			bank = append(bank, tgbotapi.NewInlineKeyboardButtonData(t.Word, buildEngBoardCallback(engTile, ref, t.ID)))
		}
		rows = append(rows, chunkButtons(bank, tilesPerRow)...)

		actions := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✅ 확인", buildEngBoardCallback(engCheck, ref)),
		}
		if e.Mode.IsOrdering() {
			actions = append(actions, tgbotapi.NewInlineKeyboardButtonData("↩️ 초기화", buildEngBoardCallback(engReset, ref)))
		}
		rows = append(rows, actions)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("다음 문장 ▶️", buildEngBoardCallback(engNext, ref)),
		tgbotapi.NewInlineKeyboardButtonData("« 방식 선택", buildMenuCallback(menuEng)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func chunkButtons(buttons []tgbotapi.InlineKeyboardButton, size int) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for len(buttons) > 0 {
		n := min(size, len(buttons))
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}
	return rows
}
