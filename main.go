package main

import (
	"context"
	"convbot/internal/adapters/converter"
	"convbot/internal/adapters/file"
	"convbot/internal/adapters/handler"
	"convbot/internal/adapters/metrics"
	"convbot/internal/adapters/sender"
	"convbot/internal/config"
	"convbot/internal/core/domain"
	"convbot/internal/core/domain/command"
	"convbot/internal/core/service"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Info().Msg("starting convbot...")

	log.Info().Msg("reading config...")
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)

	catalog, err := domain.DefaultCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid localization table")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b, err := bot.New(cfg.BotToken, handler.BotOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)
	files := file.NewTelegramResolver(b)

	imageConverter, err := converter.New(cfg.Backend, cfg.JPEGQuality)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend).Msg("failed initializing converter")
	}

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)
	store := service.NewMemoryStore()

	commandRegistry := &command.Registry{}
	commandRegistry.Register(command.NewStart(store, catalog, s, "/start"))
	log.Info().Strs("commands", commandRegistry.ListCommands()).Msg("registered commands")

	router := service.NewRouter(service.RouterParams{
		Commands: commandRegistry,
		Language: command.NewLanguage(store, catalog, s),
		Upload:   command.NewUpload(store, catalog, s),
		Convert: command.NewConvert(command.ConvertParams{
			Store:          store,
			Catalog:        catalog,
			Files:          files,
			ImageConverter: imageConverter,
			TextSender:     s,
			DocumentSender: s,
			Metrics:        recorder,
		}),
		TextSender: s,
		Metrics:    recorder,
		Timeout:    cfg.HandlerTimeout,
	})

	dispatcher := service.NewDispatcher()
	updateHandler := handler.NewUpdate(router, dispatcher)

	updateHandler.Register(b)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Msg("bot listening")
		b.Start(gctx)

		log.Info().Msg("waiting for queued updates")
		dispatcher.Shutdown()
		return nil
	})

	if cfg.MetricsAddr != "" {
		exporter := metrics.NewExporter(cfg.MetricsAddr, registry)

		g.Go(func() error {
			log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
			if err := exporter.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return exporter.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}

	log.Info().Msg("bot stopped")
}
