package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	calculator "github.com/abhisakh/Calculator"
)

func newSimpleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simple <number> <operator> <number>",
		Short: "Fixed-format two-operand calculation",
		Long: `Compute a single <number> <operator> <number> operation, e.g. "12 + 5".

Operators: + - * / % ^ and ~, which is floor division and prints the
quotient and the remainder separately.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := calculator.EvalBinary(strings.Join(args, " "))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), red("--Error: "+err.Error()+"--"))
				return nil
			}
			if r.Floor {
				fmt.Fprintln(cmd.OutOrStdout(), green("The answer is "+strconv.FormatInt(r.Quotient, 10)))
				fmt.Fprintln(cmd.OutOrStdout(), blue("The remainder is "+strconv.FormatInt(r.Remainder, 10)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), green("The answer is "+calculator.FormatValue(r.Value)))
			return nil
		},
	}
	return cmd
}
