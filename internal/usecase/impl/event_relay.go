package impl

import (
	"context"
	"log/slog"
	"time"

	"outreach/internal/domain/repository"
	"outreach/internal/domain/service"
)

// publishTimeout bounds each broadcast so a slow broker cannot stall the
// notification path for long.
const publishTimeout = 10 * time.Second

// eventRelay is a change listener that republishes collection changes to the
// configured message queue, for dashboards and reporting pipelines outside
// the app. It is registered on the change bus at startup.
type eventRelay struct {
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewEventRelay creates the bus-to-queue relay
func NewEventRelay(
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) service.ChangeListener {
	return &eventRelay{
		userRepo:    userRepo,
		patientRepo: patientRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// OnUsersChanged republishes a users collection-changed event
func (r *eventRelay) OnUsersChanged() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	r.publish(ctx, service.CollectionUsers, len(r.userRepo.All(ctx)))
}

// OnPatientsChanged republishes a patients collection-changed event
func (r *eventRelay) OnPatientsChanged() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	r.publish(ctx, service.CollectionPatients, len(r.patientRepo.All(ctx)))
}

func (r *eventRelay) publish(ctx context.Context, collection string, records int) {
	event := &service.CollectionEvent{
		Collection: collection,
		Records:    records,
		Origin:     "store",
	}

	if err := r.publisher.PublishCollectionEvent(ctx, event); err != nil {
		r.logger.Warn("Failed to publish collection event",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}
