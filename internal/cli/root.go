package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sabania/framesrv/internal/domain"
	"github.com/sabania/framesrv/internal/infra/fileserver"
	"github.com/sabania/framesrv/internal/infra/httpserver"
	"github.com/sabania/framesrv/internal/infra/logger"
	"github.com/sabania/framesrv/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt kills the process outright.
		<-ctx.Done()
		stop()
	}()

	cmd := newRootCmd(domain.DefaultConfig())
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg domain.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "framesrv",
		Short:        "Serve the current directory with iframe-friendly headers",
		Long:         "Serves the working directory over HTTP on port 8000, allowing any origin to embed or fetch it.\nThe headers are permissive on purpose and not meant for production.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup, _ := logger.Setup(logger.Config{Output: cmd.ErrOrStderr()})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			handler := fileserver.New(cfg.Root, cfg.Headers)
			server := httpserver.New(cfg, handler, httpserver.WithLogger(logger.L()))
			uc := usecase.NewServeDirectory(server, newBannerAnnouncer(cmd.OutOrStdout()))

			return uc.Execute(cmd.Context(), cfg.URL())
		},
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}
