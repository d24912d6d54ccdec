package repositories

import (
	"context"

	"network-registry.backend/internal/domain/entities"
)

// NetworkEventPublisher delivers change notifications after mutations.
// Delivery is best-effort: implementations log transport failures and an
// unconfigured publisher is a silent no-op. Callers never treat a returned
// error as a failure of the triggering operation.
type NetworkEventPublisher interface {
	Publish(ctx context.Context, event *entities.NetworkEvent) error
}
