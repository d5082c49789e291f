package mail

import (
	"context"
	"time"
)

// Client is the mail-provider collaborator the pipeline talks to.
type Client interface {
	// FetchUnseen returns up to max unread labeled messages with
	// attachments already downloaded.
	FetchUnseen(ctx context.Context, max int) ([]Message, error)

	// FetchSince returns labeled messages received after the given time,
	// read or not. Used by the history scanner.
	FetchSince(ctx context.Context, since time.Time, max int) ([]Message, error)

	// MarkSeen acknowledges a message so the next batch skips it.
	MarkSeen(ctx context.Context, messageID string) error
}
