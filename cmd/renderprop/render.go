package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/renderprop/internal/fixture"
	"github.com/vango-dev/renderprop/pkg/render"
)

func renderCmd(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render <fixture>",
		Short: "Render one fixture to HTML",
		Long: `Render one fixture to HTML on standard output.

The argument is a fixture file, or the name of a fixture in the
configured fixture directory.

Examples:
  renderprop render fixtures/card.yaml
  renderprop render card --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.findFixture(args[0])
			if err != nil {
				return err
			}
			html, err := a.renderHTML(cmd.Context(), f, pretty || a.cfg.Gallery.Pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")

	return cmd
}

// findFixture loads arg as a file when it names one, and otherwise looks
// it up by name in the fixture directory.
func (a *app) findFixture(arg string) (*fixture.Fixture, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return fixture.Load(arg)
	}
	fixtures, err := fixture.LoadDir(a.cfg.FixturesPath())
	if err != nil {
		return nil, err
	}
	return fixture.Find(fixtures, arg)
}

func (a *app) renderHTML(ctx context.Context, f *fixture.Fixture, pretty bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := otel.Tracer(a.cfg.Tracing.TracerName).Start(ctx, "renderprop.render "+f.Name)
	span.SetAttributes(
		attribute.String("renderprop.fixture", f.Name),
		attribute.String("renderprop.variant", f.Variant),
	)
	defer span.End()

	html, err := f.HTML(render.RendererConfig{Pretty: pretty}, a.resolveOptions()...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	a.logger.Debug("fixture rendered", "fixture", f.Name, "bytes", len(html))
	return html, nil
}
