// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
	"github.com/aliskhannn/drill-bot/internal/service"
)

// Plain messages.
const (
	msgInternalError    = "문제가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgUnknownCommand   = "알 수 없는 명령어입니다. /help 로 사용법을 확인하세요."
	msgNoActiveGame     = "진행 중인 게임이 없습니다. /geo 또는 /eng 로 시작하세요."
	msgNoQuestions      = "불러올 데이터가 없습니다. CSV 파일 형식을 확인해주세요."
	msgNoWrongAnswers   = "틀린 문제가 없습니다!"
	msgReviewAfterEnd   = "오답 노트는 게임이 끝난 뒤에 볼 수 있습니다. /end 로 종료하세요."
	msgStaleButton      = "이미 지난 문제입니다."
	msgAlreadyAnswered  = "이미 답을 선택했습니다."
	msgInvalidOption    = "보기에 있는 번호를 입력해주세요."
	msgGeoUnavailable   = "오류: 지리 데이터를 불러올 수 없습니다. 데이터 경로를 확인해주세요."
	msgEngUnavailable   = "오류: 영어 문장 데이터를 불러올 수 없습니다. 데이터 경로를 확인해주세요."
	msgAllQuestionsDone = "모든 문제를 풀었습니다!"
	msgReviewDone       = "오답 문제를 모두 완료했습니다! 수고하셨습니다!"
	msgCorrect          = "정답입니다! 🎉"
)

func welcomeMessage() string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("📚 문장 & 지리 연습 봇"),
		md("연습할 과목을 선택하세요."),
	)
}

func helpMessage() string {
	lines := []string{
		"/start: 처음 화면",
		"/geo: 지리 퀴즈",
		"/eng: 영어 문장 연습",
		"/review: 지리 퀴즈 오답 노트",
		"/end: 지리 퀴즈 종료",
		"",
		"퀴즈 중에는 1~4를 입력해서 답할 수도 있습니다.",
	}
	return bold("도움말") + "\n\n" + md(strings.Join(lines, "\n"))
}

func geoMenuMessage() string {
	return fmt.Sprintf("%s\n\n%s", bold("🌍 지리 퀴즈"), md("문제 유형을 선택하세요."))
}

func engMenuMessage() string {
	return fmt.Sprintf("%s\n\n%s", bold("📝 영어 문장 연습"), md("연습 방식을 선택하세요."))
}

func kindLabel(kind entities.QuestionKind) string {
	switch kind {
	case entities.QuestionKindFactToCountry:
		return "설명 보고 나라 맞히기"
	case entities.QuestionKindCountryToFact:
		return "나라 보고 설명 맞히기"
	default:
		return string(kind)
	}
}

func modeLabel(mode entities.ExerciseMode) string {
	switch mode {
	case entities.ExerciseModeFillBlank:
		return "빈칸 채우기"
	case entities.ExerciseModeOrderTranslated:
		return "순서 맞추기 (해석 있음)"
	case entities.ExerciseModeOrderBlind:
		return "순서 맞추기 (해석 없음)"
	default:
		return string(mode)
	}
}

// formatGeoQuestion formats a geography question with numbered options.
func formatGeoQuestion(s *entities.QuizSession, q *entities.Question) string {
	var sb strings.Builder

	if s.ReviewMode {
		sb.WriteString(bold("오답 노트 모드"))
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("오답 문제 (%d/%d)", s.ReviewIndex, len(s.WrongAnswers))))
	} else {
		sb.WriteString(bold(fmt.Sprintf("문제 %d번째", s.QuestionCount)))
		sb.WriteString("  ")
		sb.WriteString(md(fmt.Sprintf("점수: %d", s.Score)))
	}
	sb.WriteString("\n\n")
	sb.WriteString(md(q.Prompt))
	sb.WriteString("\n")

	for i, opt := range q.Options {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%d. %s", i+1, opt)))
	}

	return sb.String()
}

// maxMessageLen is Telegram's limit on message text. Byte length is used as
// the measure, which never undercounts the UTF-16 length Telegram checks.
const maxMessageLen = 4096

// formatGeoFeedback formats the verdict of an answered question within budget bytes.
// The fact sheet is shortened when it does not fit.
func formatGeoFeedback(res *service.AnswerResult, budget int) string {
	var head, tail strings.Builder

	if res.Correct {
		head.WriteString(bold(msgCorrect))
	} else {
		head.WriteString(md("틀렸습니다. 정답은 "))
		head.WriteString(bold(res.CorrectAnswer))
		head.WriteString(md("입니다."))
	}

	if res.Explanation != "" {
		head.WriteString("\n\n")
		head.WriteString(md(res.Explanation))
	}

	if !res.ReviewMode {
		tail.WriteString("\n\n")
		tail.WriteString(md(fmt.Sprintf("점수: %d / %d", res.Score, res.QuestionCount)))
	}

	if res.FactSheet != nil {
		head.WriteString("\n\n")
		head.WriteString(formatFactSheet(*res.FactSheet, budget-head.Len()-tail.Len()))
	}

	return head.String() + tail.String()
}

// formatFactSheet lists every fact of the country, dropping the ones that
// would push the text past budget bytes.
func formatFactSheet(f entities.FactSheet, budget int) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%s의 모든 특징:", f.Country)))
	if len(f.Regions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(md("지역: " + strings.Join(f.Regions, ", ")))
	}

	total := 0
	for _, c := range f.Categories {
		total += len(c.Facts)
	}

	// Room for the omission line.
	budget -= len(md(fmt.Sprintf("… 외 %d개", total))) + 1

	shown := 0
	for _, c := range f.Categories {
		header := "\n\n" + bold(c.Label())
		headerDone := false
		for _, fact := range c.Facts {
			line := "\n" + md("• "+fact)
			need := len(line)
			if !headerDone {
				need += len(header)
			}
			if sb.Len()+need > budget {
				break
			}
			if !headerDone {
				sb.WriteString(header)
				headerDone = true
			}
			sb.WriteString(line)
			shown++
		}
	}

	if shown < total {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("… 외 %d개", total-shown)))
	}

	return sb.String()
}

// formatSummary formats the end-of-game report. headline is shown first when set.
func formatSummary(sum entities.Summary, headline string) string {
	var sb strings.Builder

	if headline != "" {
		sb.WriteString(bold(headline))
		sb.WriteString("\n\n")
	}

	sb.WriteString(md("총 "))
	sb.WriteString(bold(fmt.Sprintf("%d", sum.QuestionCount)))
	sb.WriteString(md("문제 중 "))
	sb.WriteString(bold(fmt.Sprintf("%d", sum.Score)))
	sb.WriteString(md("문제를 맞히셨습니다!"))
	sb.WriteString("\n")
	sb.WriteString(md("정답률: "))
	sb.WriteString(bold(fmt.Sprintf("%d%%", sum.Accuracy)))

	if sum.WrongCount > 0 && !sum.ReviewCompleted {
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("틀린 문제 %d개를 오답 노트로 복습할 수 있습니다.", sum.WrongCount)))
	}

	return sb.String()
}

// formatExercise renders the English board. status is appended as the last line.
func formatExercise(e *entities.Exercise, status string) string {
	var sb strings.Builder

	sb.WriteString(bold("📝 " + modeLabel(e.Mode)))
	sb.WriteString("\n\n")

	if e.Mode.ShowsTranslation() && e.Sentence.Translation != "" {
		sb.WriteString(italic(e.Sentence.Translation))
		sb.WriteString("\n\n")
	}

	sb.WriteString(md(boardLine(e)))

	if status != "" {
		sb.WriteString("\n\n")
		sb.WriteString(status)
	}

	return sb.String()
}

// boardLine shows the sentence as the user is building it.
func boardLine(e *entities.Exercise) string {
	if e.Mode.IsOrdering() {
		placed := e.PlacedWords()
		if len(placed) == 0 {
			return "…"
		}
		return strings.Join(placed, " ")
	}

	words := make([]string, len(e.Sentence.Tokens))
	copy(words, e.Sentence.Tokens)
	for _, b := range e.Blanks {
		if b.IsEmpty() {
			words[b.Index] = "____"
		} else {
			words[b.Index] = "[" + b.Filled + "]"
		}
	}
	return strings.Join(words, " ")
}

// formatDrillStatus formats the verdict of a check.
func formatDrillStatus(res service.DrillResult) string {
	if res.Correct {
		return bold(msgCorrect)
	}

	status := md(fmt.Sprintf("아쉽지만 다시 시도해보세요. (오답 횟수: %d회) 🤔", res.WrongAttempts))
	if res.Reveal != "" {
		status += "\n" + md("정답: ") + bold(res.Reveal)
	}
	return status
}
