package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/SeaCloudHub/patterns/adapters/event"
	"github.com/SeaCloudHub/patterns/adapters/event/listeners"
	"github.com/SeaCloudHub/patterns/adapters/notificationhub"
	"github.com/SeaCloudHub/patterns/adapters/redisstore"
	"github.com/SeaCloudHub/patterns/adapters/services"
	"github.com/SeaCloudHub/patterns/domain/editor"
	"github.com/SeaCloudHub/patterns/domain/notification"
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

	manager := event.NewEventManager(event.WithLogger(applog))
	ed := editor.New(manager)

	logListener, err := listeners.NewLogOpenListener(cfg.Editor.LogPath)
	if err != nil {
		return err
	}
	defer logListener.Close()

	mailer, err := newMailer(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ed.Events().Subscribe(editor.EventOpen, logListener)
	ed.Events().Subscribe(editor.EventSave, listeners.NewEmailNotificationListener(cfg.Editor.AdminEmail, mailer))

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.NewConnection(context.Background(), redisstore.ParseFromConfig(cfg))
		if err != nil {
			return err
		}
		defer rdb.Close()

		publisher := listeners.NewPublishListener(cfg.Redis.Channel, redisstore.NewRedisClient(rdb))
		ed.Events().Subscribe(editor.EventOpen, publisher)
		ed.Events().Subscribe(editor.EventSave, publisher)
		applog.Infow("publishing editor events", "channel", cfg.Redis.Channel)
	}

	if err := ed.OpenFile(cfg.Editor.File); err != nil {
		return err
	}
	applog.Infow("file opened", "file", ed.File(), "log", logListener.Path())

	if err := ed.SaveFile(); err != nil {
		return err
	}
	applog.Infow("file saved", "file", ed.File())

	return nil
}

func newMailer(cfg *config.Config, w io.Writer) (notification.Service, error) {
	if cfg.NotificationHub.Endpoint == "" {
		return services.NewConsoleMailer(w), nil
	}

	return notificationhub.NewNotificationHub(cfg)
}
