package commands

import (
	"fmt"

	"github.com/riggbuild/rigg/internal/app"
	"github.com/riggbuild/rigg/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [packages...]",
		Short: "Locate installed files for declared tool packages",
		Long: "Resolve computes the directory the package manager used for each " +
			"declared tool package and lists the files found there. With no " +
			"arguments, every package in rigg.yaml is resolved.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.ResolveOptions{}
			opts.ConfigFile, _ = cmd.Flags().GetString("config")

			if cmd.Flags().Changed("scope") {
				raw, _ := cmd.Flags().GetString("scope")
				scope, err := domain.ParseInstallScope(raw)
				if err != nil {
					return err
				}
				opts.Scope = &scope
			}

			resolutions, err := c.app.Resolve(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			out := cmd.OutOrStdout()
			for _, res := range resolutions {
				_, _ = fmt.Fprintf(out, "%s (%s) dir=%s digest=%s files=%d\n",
					res.Package, res.Scope, res.Directory, res.Digest, len(res.Files))
				if quiet {
					continue
				}
				for _, f := range res.Files {
					_, _ = fmt.Fprintf(out, "  %s\n", f.Relative(res.Directory))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Manifest file to load instead of rigg.yaml")
	cmd.Flags().StringP("scope", "s", "", "Resolve every package under this install scope (global, workdir, tools)")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the per-package summary lines")
	return cmd
}
