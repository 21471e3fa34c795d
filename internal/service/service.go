package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/events"
	"github.com/spec-kit/medequip-service/internal/repository"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// Runtime carries the collaborators every service shares. Zero values fall back
// to wall-clock time, random UUIDs, no event publication and a no-op logger.
type Runtime struct {
	Now        func() time.Time
	NewID      func() string
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

func (r Runtime) withDefaults() Runtime {
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.NewID == nil {
		r.NewID = uuid.NewString
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	return r
}

func (r Runtime) now() time.Time {
	return r.Now().UTC()
}

func (r Runtime) publish(ctx context.Context, event events.Event) {
	if r.Dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = r.NewID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = r.now()
	}
	if err := r.Dispatcher.Publish(ctx, event); err != nil {
		r.Logger.Warn("event delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err))
	}
}

// requireIdentity rejects calls that reached a service without an authenticated caller.
func requireIdentity(identity *domain.Identity) error {
	if identity == nil || identity.UserID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	return nil
}

// storeError maps repository failures onto domain errors for resource.
func storeError(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource, nil)
	default:
		return apperrors.NewInternalError(err)
	}
}
