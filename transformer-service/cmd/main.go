package main

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"

	"github.com/hijacksecurity/PravdaPlus/logging"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/api"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/config"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/handler"
	"github.com/hijacksecurity/PravdaPlus/transformer-service/metrics"
)

func main() {
	_ = gotenv.Load()
	logging.InitLogger()

	cfg := config.Load()
	metrics.Init("transformer-service", handler.Version, os.Getenv("ENVIRONMENT"))

	if err := api.StartServer(cfg); err != nil {
		slog.Error("transformer stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
