package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"cineseek/account"
	"cineseek/catalog"
	"cineseek/contact"
	"cineseek/httpserver"
	"cineseek/huggingface"
	"cineseek/inmem"
	"cineseek/pkg/config"
	"cineseek/pkg/jwt"
	"cineseek/pkg/sentry"
	"cineseek/titlegen"
	"cineseek/tmdb"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	tmdbClient := tmdb.NewClient(tmdb.Options{
		APIKey:       cfg.TMDB.APIKey,
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
	})
	if !tmdbClient.Configured() {
		slog.Warn("TMDB API key missing, movie endpoints will report a configuration error")
	}

	var generator titlegen.TextGenerator
	if cfg.HasGenerativeCredential() {
		generator = huggingface.NewClient(huggingface.Options{
			APIKey:  cfg.HuggingFace.APIKey,
			BaseURL: cfg.HuggingFace.BaseURL,
		})
	} else {
		slog.Info("no generative credential, titles will be synthesized locally")
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tokens := jwt.NewJWTProvider(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Second)

	server := httpserver.Default(cfg)
	server.CatalogService = catalog.NewUsecase(tmdbClient)
	server.TitleService = titlegen.NewUsecase(generator, rng)
	server.AccountService = account.NewUsecase(tokens)
	server.ContactService = contact.NewUsecase(inmem.NewContactRepository())
	if cfg.Port != 0 {
		server.Addr = fmt.Sprintf(":%d", cfg.Port)
	}

	slog.Info("server started!")
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
