package sentry

import (
	"fmt"
	"time"

	"github.com/SeaCloudHub/patterns/pkg/config"
	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const FlushTime = 2 * time.Second

// Init is a no-op on the sentry side when no DSN is configured.
func Init(cfg *config.Config) error {
	return sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// Report logs err and sends it to sentry.
func Report(applog *zap.SugaredLogger, err error) {
	applog.WithOptions(zap.AddCallerSkip(1)).Errorw("demo failed", zap.Error(err))
	sentrygo.CaptureException(err)
}

// Recover turns a panic into a reported error. It must be deferred directly.
func Recover(applog *zap.SugaredLogger, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	sentrygo.CurrentHub().Recover(r)

	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}

	applog.Errorw("recovered from panic", zap.Any("panic", r))
	*errp = err
}
