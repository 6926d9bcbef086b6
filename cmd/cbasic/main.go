package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("cbasic")

func main() {
	var verbosity int
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "cbasic",
		Short: "A stack-based toy language built on parser combinators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: cbasic/config.yaml under the user config dir)")

	rootCmd.AddCommand(newReplCmd(&configPath))
	rootCmd.AddCommand(newEvalCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
