package domain

import "context"

// Navigator is the "navigate to path" primitive of the routing collaborator.
// Navigation is asynchronous: the shell learns about the result when the
// page for the target is requested.
type Navigator interface {
	Navigate(path string)
}

// PreferenceRepository stores string preferences per browser client.
// Implemented by repository.PreferenceRepo.
type PreferenceRepository interface {
	Get(ctx context.Context, clientID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, clientID, key, value string) error
	Delete(ctx context.Context, clientID string) error
}
