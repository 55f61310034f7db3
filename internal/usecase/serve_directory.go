package usecase

import (
	"context"
	"fmt"

	"github.com/sabania/framesrv/internal/ports"
)

type ServeDirectory struct {
	server    ports.HTTPServer
	announcer ports.Announcer
}

func NewServeDirectory(s ports.HTTPServer, a ports.Announcer) *ServeDirectory {
	return &ServeDirectory{
		server:    s,
		announcer: a,
	}
}

// Execute binds, announces url, then blocks serving until ctx is done.
// Nothing is announced when the bind fails.
func (uc *ServeDirectory) Execute(ctx context.Context, url string) error {
	if err := uc.server.Listen(); err != nil {
		return err
	}

	if uc.announcer != nil {
		if err := uc.announcer.Announce(url); err != nil {
			return fmt.Errorf("announce: %w", err)
		}
	}

	return uc.server.Serve(ctx)
}
