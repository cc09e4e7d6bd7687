package imagestore

import (
	"context"
	"io"
)

// Store is the image store collaborator contract. The core never
// inspects file contents; the returned URL is an opaque string embedded
// in product and order records.
type Store interface {
	// Upload stores the file bytes durably and returns a public URL.
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
