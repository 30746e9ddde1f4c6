package providers

import (
	"context"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to change
// notifications
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.ChangeEvent) error

	// Subscribe subscribes to events on a channel. The subscription is
	// released when ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ChangeEvent, error)

	// Unsubscribe tears down a channel and all of its subscribers
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel constants for the two notification scopes
const (
	// EventChannelHospitalUpdates carries every hospitals-table event,
	// unfiltered. The directory view re-fetches on any of them.
	EventChannelHospitalUpdates = "hospitals:updates"

	// EventChannelHospitalPrefix is the prefix for hospital-scoped
	// channels. A hospital's channel carries its own hospital events and
	// its doctor roster events.
	EventChannelHospitalPrefix = "hospital:"
)

// GetHospitalChannel returns the channel name for a specific hospital
func GetHospitalChannel(hospitalID string) string {
	return EventChannelHospitalPrefix + hospitalID
}
