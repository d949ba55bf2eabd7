package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/str8ts/cmd/str8ts/inspect"
	"github.com/puzzle-framework/str8ts/cmd/str8ts/solve"
	"github.com/puzzle-framework/str8ts/pkg/solver"
	"github.com/puzzle-framework/str8ts/pkg/version"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "str8ts",
		Short: "str8ts",
		Long:  `A CLI tool to solve and inspect Str8ts puzzles.`,

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solve.NewCmd())
	rootCmd.AddCommand(inspect.NewCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := rootCmd.PersistentFlags().MarkHidden("debug"); err != nil {
		log.Panic(err.Error())
	}

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
