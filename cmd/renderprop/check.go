package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/internal/fixture"
)

func checkCmd(a *app) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify every fixture",
		Long: `Render every fixture in a directory twice, verify both renders
produce the same tree, and compare the HTML with each fixture's
expect section.

Examples:
  renderprop check
  renderprop check fixtures --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.FixturesPath()
			if len(args) == 1 {
				dir = args[0]
			}
			fixtures, err := fixture.LoadDir(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, f := range fixtures {
				err := f.Check(a.resolveOptions()...)
				switch {
				case err == nil && !jsonOut:
					success(out, "%s", f.Name)
				case err == nil:
					fmt.Fprintf(out, "{\"fixture\":%q,\"ok\":true}\n", f.Name)
				case jsonOut:
					failed++
					fmt.Fprintf(out, "{\"fixture\":%q,\"ok\":false,\"error\":%s}\n", f.Name, errors.FromError(err, "E034").FormatJSON())
				default:
					failed++
					failure(out, "%s: %s", f.Name, errors.FromError(err, "E034").FormatCompact())
				}
			}

			if failed > 0 {
				return errors.Newf(errors.CategoryCLI, "%d of %d fixtures failed", failed, len(fixtures))
			}
			if !jsonOut {
				fmt.Fprintf(out, "\n%d fixtures passed\n", len(fixtures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print one JSON object per fixture")

	return cmd
}
