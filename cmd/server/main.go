package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "flight-search",
		Short:        "Flight search and session service",
		SilenceUsage: true,
	}

	root.AddCommand(
		NewServeCommand(),
		NewSearchCommand(),
		NewAirportsCommand(),
		NewAirlinesCommand(),
	)
	return root
}
