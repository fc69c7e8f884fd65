package storage

import "context"

// KeyLastViewedReply is the marker behind the "new volunteer reply" badge.
// It is keyed per installation, not per parent.
const KeyLastViewedReply = "lastViewedReplyId"

// KeyValueStore is the persistence capability injected into the workflows
// instead of being reached for as ambient global state.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
