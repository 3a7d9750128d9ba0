package main

import (
	"fmt"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	handler "github.com/mlukashe/go-photo-keeper/internal/handler/http"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("photo-keeper-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers := handler.NewHandler(*cfg, log)
	server.NewServer(handlers.Init(), *cfg, log).RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
