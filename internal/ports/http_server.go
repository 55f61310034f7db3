package ports

import "context"

// HTTPServer binds a listener and serves requests until the context ends.
type HTTPServer interface {
	Listen() error
	Serve(ctx context.Context) error
}
