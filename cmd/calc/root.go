package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Safe expression calculator",
	Long: `calc evaluates arithmetic expressions with variables, either one at a
time, interactively, or over HTTP. Expressions are interpreted by a closed
evaluator: the only names available are the built-in math functions and the
session's variables, so no input can reach the host system.`,
	SilenceUsage: true,
}

func init() {
	log.SetFlags(0)
	rootCmd.AddCommand(newEvalCmd(), newNLCmd(), newSimpleCmd(), newReplCmd(), newServeCmd())
}
