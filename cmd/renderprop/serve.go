package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/renderprop/internal/gallery"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port   int
		host   string
		watch  bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fixture gallery",
		Long: `Serve every fixture as an HTML page. With --watch, fixture files
are re-rendered as they change and open pages reload when the output
differs.

Examples:
  renderprop serve
  renderprop serve --watch --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Gallery.Port = port
			}
			if host != "" {
				a.cfg.Gallery.Host = host
			}
			if watch {
				a.cfg.Gallery.Watch = true
			}
			if pretty {
				a.cfg.Gallery.Pretty = true
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := gallery.New(ctx, gallery.Options{Config: a.cfg, Logger: a.logger})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from renderprop.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from renderprop.json)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render fixtures when their files change")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent rendered HTML")

	return cmd
}
