package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/drill-bot/internal/config"
	"github.com/aliskhannn/drill-bot/internal/csvrecord"
	"github.com/aliskhannn/drill-bot/internal/delivery/telegram"
	"github.com/aliskhannn/drill-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/drill-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/drill-bot/internal/logger"
	"github.com/aliskhannn/drill-bot/internal/repository"
	"github.com/aliskhannn/drill-bot/internal/service"
	"github.com/aliskhannn/drill-bot/internal/storage"
)

func main() {
	// A missing .env is fine: variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "처음 화면",
		},
		{
			Command:     "geo",
			Description: "지리 퀴즈",
		},
		{
			Command:     "eng",
			Description: "영어 문장 연습",
		},
		{
			Command:     "review",
			Description: "지리 퀴즈 오답 노트",
		},
		{
			Command:     "end",
			Description: "지리 퀴즈 종료",
		},
		{
			Command:     "help",
			Description: "도움말",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Datasets load fail-soft: a broken one only disables its exercise.
	geoSrc, sentSrc, closeSources, err := dataSources(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open dataset sources", zap.Error(err))
	}
	defer closeSources()

	geoRepo, geoErr := repository.LoadGeography(ctx, geoSrc, lg)
	if geoErr != nil {
		lg.Error("geography dataset unavailable", zap.Error(geoErr))
	} else {
		lg.Info("geography dataset loaded", zap.Int("entries", geoRepo.Len()))
	}

	bank, sentErr := repository.LoadSentenceBank(ctx, sentSrc)
	if sentErr != nil {
		lg.Error("english dataset unavailable", zap.Error(sentErr))
	} else {
		lg.Info("english dataset loaded", zap.Int("sentences", bank.Len()))
	}

	games := service.NewGameFactory(
		geoRepo, geoErr,
		bank, sentErr,
		service.GameSettings{
			Distractors:     cfg.Geography.OptionsCount - 1,
			EndOnExhaustion: cfg.Geography.EndOnExhaustion,
			MaxBlanks:       cfg.English.MaxBlanks,
			RevealAfter:     cfg.English.RevealAfter,
		},
		service.NewLogObserver(lg),
	)

	geoGames := storage.NewSessionStore[*service.GeographyQuiz]()
	engGames := storage.NewSessionStore[*service.EnglishDrill]()

	janitor := service.NewSessionJanitor(cfg.Sessions.CleanupSchedule, cfg.Sessions.IdleTTL, lg, geoGames, engGames)
	go func() {
		if err := janitor.Start(ctx); err != nil {
			lg.Error("session janitor stopped", zap.Error(err))
		}
	}()

	handler := telegram.NewHandler(bot, lg, games, geoGames, engGames, cfg.Geography.AnswerDelay)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

// dataSources builds the record sources named by cfg.Data. The returned
// func closes the database pool, if one was opened.
func dataSources(ctx context.Context, cfg *config.Config, lg *zap.Logger) (geo, sent repository.RecordSource, closeFn func(), err error) {
	closeFn = func() {}

	var db postgres.DBTX
	if cfg.Data.UsesPostgres() {
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, closeFn, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, closeFn, err
		}
		db = pool
		closeFn = pool.Close
	}

	client := &http.Client{Timeout: cfg.Data.FetchTimeout}
	delim := cfg.Data.DelimiterRune()

	if cfg.Data.GeographySource == config.SourcePostgres {
		geo = pgrepo.NewGeographySource(db)
	} else {
		geo = repository.NewCSVSource(
			repository.NewTextFetcher(cfg.Data.GeographySource, client),
			csvrecord.NewParser(repository.GeographyParserOptions(delim), lg),
		)
	}

	if cfg.Data.EnglishSource == config.SourcePostgres {
		sent = pgrepo.NewSentenceSource(db)
	} else {
		sent = repository.NewCSVSource(
			repository.NewTextFetcher(cfg.Data.EnglishSource, client),
			csvrecord.NewParser(repository.SentenceParserOptions(delim), lg),
		)
	}

	return geo, sent, closeFn, nil
}
