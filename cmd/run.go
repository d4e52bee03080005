package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/firefly-engineering/squid-in-a-can/internal/bootstrap"
	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
)

// forwardedSignals are passed on to squid while it runs. Before the
// launch they abort the bootstrap.
var forwardedSignals = []os.Signal{unix.SIGTERM, unix.SIGINT, unix.SIGHUP, unix.SIGQUIT}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Render squid.conf, initialize the cache and run squid",
	Long: `Runs the full bootstrap as root:

  1. remove a stale squid pid file
  2. render squid.conf from the template and the environment
  3. chown the cache directory to the squid user
  4. run "squid -z" and wait for the cache layout
  5. run "squid -N" and wait for it to exit

The exit status is squid's own. SIGTERM, SIGINT, SIGHUP and SIGQUIT are
forwarded to squid. Received before step 5, they stop the bootstrap
without starting squid.`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, forwardedSignals...)
	defer signal.Stop(signals)

	code, err := newBootstrapper(settings, bootstrap.WithSignals(signals)).Run(cmd.Context())
	if err != nil {
		return err
	}
	if code != 0 {
		return errors.DaemonExited(code)
	}
	return nil
}
