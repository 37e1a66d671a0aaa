package providers

import (
	"context"
)

type ctxKey string

const (
	tagsKey ctxKey = "tags"
)

// Tags is an interface for tagging contexts
type Tags interface {
	// LogTags returns the tags for logging
	LogTags() map[string]any
	// WithOperation adds the gateway operation to the tags
	WithOperation(operation string) Tags
	// WithAccount adds the connected account id to the tags
	WithAccount(accountID string) Tags
	// WithContextID adds the contextID to the tags
	WithContextID(contextID string) Tags
	// WithError adds the error to the tags
	WithError(err error) Tags
	// GetOperation returns the gateway operation from the tags
	GetOperation() (string, bool)
	// GetAccount returns the connected account id from the tags
	GetAccount() (string, bool)
	// GetContextID returns the contextID from the tags
	GetContextID() (string, bool)
	// GetError returns the error from the tags
	GetError() (error, bool)
}

// GetTags returns the tags from the context
func GetTags(ctx context.Context) (Tags, bool) {
	tags, ok := ctx.Value(tagsKey).(Tags)
	if !ok {
		return nil, false
	}
	return tags, true
}

// WithTags adds tags to the context
func WithTags(ctx context.Context, tags Tags) context.Context {
	return context.WithValue(ctx, tagsKey, tags)
}

// TagsProvider is a function that returns a new Tags instance
type TagsProvider func() Tags
