package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottcagno/hashmaps/pkg/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:   "hmstat",
		Short: "Inspect how the hash maps lay out a set of keys",
		Long: `hmstat loads keys into an open addressing or a separate chaining
hash map and reports the shape of the resulting table.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.ConfigureLoggerTo(cmd.ErrOrStderr())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&logging.LogDebug, "log-debug", "d", false, "Enable debug logs")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJson, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(primesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
