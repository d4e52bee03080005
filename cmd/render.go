package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
)

var (
	renderRoot   string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render squid.conf without starting squid",
	Long: `Renders squid.conf from the template and the environment exactly as
"run" would, without requiring root and without running any command.

--root treats DIR as the filesystem root when locating the template and the
output file, for rendering into an image tree. Symlinks inside DIR cannot
point outside it. --output overrides the output file; "-" writes to stdout.`,
	Example: `  squid-in-a-can render --output -
  SQUID_DIRECTIVES_ONLY=1 SQUID_DIRECTIVES="$(cat extra.conf)" squid-in-a-can render --root ./rootfs`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderRoot, "root", "", "Resolve the template and output paths under DIR")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", `Output file, "-" for stdout (default the configured squid.conf)`)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// The cache path ends up inside squid.conf, so only the files this
	// command touches are moved under --root.
	resolved, err := settings.Paths.Under(renderRoot)
	if err != nil {
		return errors.ConfigError("invalid --root", err)
	}
	settings.Paths.Template = resolved.Template
	settings.Paths.Config = resolved.Config

	b := newBootstrapper(settings)
	_, doc, err := b.Prepare()
	if err != nil {
		return err
	}

	if renderOutput == "-" {
		if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
			return errors.RenderFailed("stdout", err)
		}
		return nil
	}

	target := settings.Paths.Config
	if renderOutput != "" {
		target = renderOutput
	}

	doc.Announce()
	if err := b.WriteConfig(doc, target); err != nil {
		return err
	}
	logging.UserSuccess("Wrote %s", target)
	return nil
}
