package interfaces

import (
	"context"

	"educa_taxista/internal/domain/entities"
)

// INotifier is one delivery channel (email, WhatsApp). Channels are
// fire-and-forget from the caller's perspective: a failed delivery is
// reported but never rolls back the operation that triggered it.

type INotifier interface {
	// DeliverTemporaryPassword sends the freshly generated credential.
	DeliverTemporaryPassword(ctx context.Context, e entities.Enrollment, password string) error
	// NotifyCourseUnlocked tells the registrant the course is available.
	NotifyCourseUnlocked(ctx context.Context, e entities.Enrollment) error
}
