package cmd

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/database"
	"github.com/msgdesk/pkg/llm"
	"github.com/msgdesk/pkg/logger"
	"github.com/msgdesk/pkg/seed"
	"github.com/msgdesk/pkg/server"
	"github.com/msgdesk/pkg/tracing"
	"github.com/msgdesk/pkg/utils"
	"go.uber.org/zap"
)

func StartApp() {
	envLoaded := utils.LoadEnv()
	config := config.InitConfig()

	zl, err := logger.New(config.Log)
	if err != nil {
		log.Fatalf("invalid log configuration: %v", err)
	}
	defer zl.Sync()
	if !envLoaded {
		zl.Info(".env file not found, using system environment variables")
	}

	shutdown, err := tracing.Init(context.Background(), config.Tracing, config.App.Name, zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer shutdown(context.Background())

	database.InitDB(config.Database, zl)
	db := database.DBClient()

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	if config.Database.Seed {
		if err := seed.Run(context.Background(), db, rng, zl); err != nil {
			zl.Fatal("seeding failed", zap.Error(err))
		}
	}

	server.LaunchHttpServer(config.App, config.Allows, server.Deps{
		DB:        db,
		Completer: llm.NewClient(config.LLM, zl),
		WhatsApp:  config.WhatsApp,
		Rand:      rng,
		Logger:    zl,
	})
}
