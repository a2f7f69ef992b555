package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/drill-bot/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// GameFactory builds the per-chat games.
type GameFactory interface {
	GeographyReady() error
	EnglishReady() error
	NewGeographyQuiz() *service.GeographyQuiz
	NewEnglishDrill() *service.EnglishDrill
}

// SessionStore keeps one game per chat.
type SessionStore[T any] interface {
	Get(chatID int64) (T, bool)
	GetOrCreate(chatID int64, create func() T) T
	Touch(chatID int64)
}
