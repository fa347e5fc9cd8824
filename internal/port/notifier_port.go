package port

import "context"

// Notifier is the user-facing toast collaborator. The storefront decides
// what text to show; rendering belongs to the implementation.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}
