package catalog

import "context"

// Handle records the outcome of the one-time client initialization at
// startup: either a usable client or the error that prevented one. The
// server keeps serving with a failed Handle; routes that need the catalog
// report the stored cause instead of a bare nil check.
type Handle struct {
	client *Client
	err    error
}

// Init attempts to construct the catalog client and never fails the caller;
// the outcome is captured in the returned Handle.
func Init(ctx context.Context, cfg Config) Handle {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return Handle{err: err}
	}
	return Handle{client: client}
}

// Ready reports whether the client initialized successfully.
func (h Handle) Ready() bool {
	return h.client != nil
}

// Client returns the initialized client, or nil when initialization failed.
func (h Handle) Client() *Client {
	return h.client
}

// Err returns the initialization error, or nil when the client is ready.
func (h Handle) Err() error {
	return h.err
}
