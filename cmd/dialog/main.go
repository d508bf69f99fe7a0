package main

import (
	"log"
	"os"
	"runtime"

	"github.com/SeaCloudHub/patterns/domain/dialog"
	"github.com/SeaCloudHub/patterns/pkg/config"
	"github.com/SeaCloudHub/patterns/pkg/logger"
	"github.com/SeaCloudHub/patterns/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot create logger: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	if err := sentry.Init(cfg); err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}

	if err := run(cfg, applog); err != nil {
		sentry.Report(applog, err)
		sentrygo.Flush(sentry.FlushTime)
		logger.Sync(applog)
		os.Exit(1)
	}

	sentrygo.Flush(sentry.FlushTime)
}

func run(cfg *config.Config, applog *zap.SugaredLogger) (err error) {
	defer sentry.Recover(applog, &err)

	platform := cfg.Platform
	if platform == "" {
		platform = dialog.PlatformFor(runtime.GOOS)
	}

	factory, err := dialog.New(platform)
	if err != nil {
		return err
	}
	applog.Infow("rendering dialog", "platform", platform)

	button, err := dialog.Render(factory, os.Stdout)
	if err != nil {
		return err
	}

	// the html button already fired its handler while rendering
	if platform == dialog.PlatformWindows {
		return button.Click(os.Stdout)
	}

	return nil
}
