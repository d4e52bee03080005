package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/squid-in-a-can/internal/bootstrap"
	"github.com/firefly-engineering/squid-in-a-can/internal/config"
	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
	"github.com/firefly-engineering/squid-in-a-can/internal/logging"
)

var (
	verbose      bool
	jsonOutput   bool
	settingsFile string
)

// bootstrapOptions are applied to every Bootstrapper the commands create.
var bootstrapOptions []bootstrap.Option

var rootCmd = &cobra.Command{
	Use:   "squid-in-a-can",
	Short: "Configure and run a caching squid proxy",
	Long: `squid-in-a-can renders squid.conf from environment variables, prepares
the cache directory and runs squid in the foreground until it exits.

Environment:
  MAXIMUM_CACHE_OBJECT   largest cacheable object in MB (default 1024)
  DISK_CACHE_SIZE        on-disk cache size in MB (default 5000)
  SQUID_DIRECTIVES_ONLY  write only SQUID_DIRECTIVES, skipping the template
  SQUID_DIRECTIVES       raw squid.conf text appended at the end
  PARENT_PROXY_HOST      upstream proxy to forward all requests to
  PARENT_PROXY_PORT      upstream proxy port
  PARENT_PROXY_USERNAME  upstream proxy login
  PARENT_PROXY_PASSWORD  upstream proxy password, base64 encoded

Running without a subcommand is the same as "run".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE: runBootstrap,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
		logging.Debug("exiting", "code", errors.GetExitCode(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "config", "",
		"Settings file (default "+config.DefaultSettingsFile+" if present)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadSettings reads the settings file. The default location may be absent;
// a file named with --config must exist.
func loadSettings() (*config.Settings, error) {
	path, required := settingsFile, true
	if path == "" {
		path, required = config.DefaultSettingsFile, false
	}

	settings, err := config.LoadSettings(path, required)
	if err != nil {
		return nil, errors.ConfigError("failed to load settings", err)
	}
	return settings, nil
}

func newBootstrapper(settings *config.Settings, opts ...bootstrap.Option) *bootstrap.Bootstrapper {
	all := append([]bootstrap.Option{bootstrap.WithSettings(settings)}, opts...)
	return bootstrap.New(append(all, bootstrapOptions...)...)
}
