package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"rosterbid/internal/apperr"
	"rosterbid/internal/config"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
	"rosterbid/internal/service/preference"
	"rosterbid/internal/transport/kafka"
)

// makePrefsKafka builds the handler for preference-submitted events.
// Validation failures are permanent: redelivering a malformed or orphaned
// submission can never succeed.
func makePrefsKafka(svc *preference.Service) kafka.HandleFunc {
	return func(ctx context.Context, sub domain.PreferenceSubmission) error {
		_, err := svc.Submit(ctx, &sub)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperr.ErrInvalid), errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrConflict):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}

func newPrefsConsumer(cfg *config.Config, logger logx.Logger, svc *preference.Service) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makePrefsKafka(svc))
}

func registerKafka(container *dig.Container) error {
	return provideAll(container, newPrefsConsumer)
}
