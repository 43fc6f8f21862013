package main

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"

	"github.com/hijacksecurity/PravdaPlus/api-service/api"
	"github.com/hijacksecurity/PravdaPlus/api-service/config"
	"github.com/hijacksecurity/PravdaPlus/api-service/handler"
	"github.com/hijacksecurity/PravdaPlus/api-service/metrics"
	"github.com/hijacksecurity/PravdaPlus/logging"
)

func main() {
	_ = gotenv.Load()
	logging.InitLogger()

	cfg := config.Load()
	metrics.Init("api-service", handler.Version, os.Getenv("ENVIRONMENT"))

	if err := api.StartServer(cfg); err != nil {
		slog.Error("gateway stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
