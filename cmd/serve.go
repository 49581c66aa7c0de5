package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/internal/iodump"
	"github.com/gnames/gnlineage/internal/ioweb"
	"github.com/spf13/cobra"
)

// getServeCmd returns the command that starts the web front end.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts web interface and JSON API",
		Long: `Loads the taxonomy dump once and serves it over HTTP.

Routes:
  GET  /                 form for names
  POST /                 results of the form
  GET  /api/v1/lineage   JSON results, parameters q, short, common
  POST /api/v1/lineage   JSON results for {"queries": [...], "short", "common"}
  GET  /api/v1/ping      health check
  GET  /metrics          Prometheus metrics

Examples:
  gnlineage serve -d ~/taxdump
  gnlineage serve -d ~/taxdump -p 8888`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runServe(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().IntP("port", "p", 0, "port of the server (default 8080)")
	return serveCmd
}

func runServe(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd))

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	gn.Info("Loading taxonomy dump from <em>%s</em>", cfg.Dump.Dir)
	resolver, err := iodump.Load(ctx, cfg)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := ioweb.New(cfg, resolver)
	if err != nil {
		return err
	}

	gn.Info("Web server is running on port <em>%d</em>", cfg.Server.Port)
	return srv.Run(ctx)
}
