package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vaskavasileva/gh-copilot-demo/modules/albums"
	"github.com/vaskavasileva/gh-copilot-demo/pkg/config"
	"github.com/vaskavasileva/gh-copilot-demo/pkg/httpserver"
	"github.com/vaskavasileva/gh-copilot-demo/pkg/logger"
)

type appConfig struct {
	Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithService("albums-api"),
	}
	if cfg.LogFormat == string(logger.FormatText) {
		opts = append(opts, logger.WithTextFormatter())
	}
	log := logger.New(opts...)

	h := albums.NewHandler(albums.NewSeededStore(), log)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/albums", albums.Router(h))

	err := httpserver.Run(context.Background(), r,
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithReadTimeout(5*time.Second),
		httpserver.WithWriteTimeout(10*time.Second),
		httpserver.WithLogger(log),
	)
	if err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
