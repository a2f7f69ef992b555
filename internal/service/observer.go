package service

import (
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/domain/entities"
)

// NewSessionID returns a new lexically sortable session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// LogObserver writes game events to a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a new LogObserver.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) QuestionReady(sessionID string, q *entities.Question) {
	o.logger.Debug("question ready",
		zap.String("session_id", sessionID),
		zap.String("kind", string(q.Kind)),
		zap.String("country", q.Country),
		zap.Int("options", len(q.Options)),
	)
}

func (o *LogObserver) Verdict(sessionID string, v Verdict) {
	o.logger.Debug("answer checked",
		zap.String("session_id", sessionID),
		zap.Bool("correct", v.Correct),
		zap.Int("score", v.Score),
		zap.Int("question_count", v.QuestionCount),
		zap.Int("wrong_attempts", v.WrongAttempts),
	)
}

func (o *LogObserver) Exhausted(sessionID string, kind entities.QuestionKind) {
	o.logger.Info("question pool exhausted",
		zap.String("session_id", sessionID),
		zap.String("kind", string(kind)),
	)
}

type nopObserver struct{}

func (nopObserver) QuestionReady(string, *entities.Question) {}
func (nopObserver) Verdict(string, Verdict) {}
func (nopObserver) Exhausted(string, entities.QuestionKind) {}
