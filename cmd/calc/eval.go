package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	calculator "github.com/abhisakh/Calculator"
)

func newEvalCmd() *cobra.Command {
	var vars []string
	var echo bool
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression",
		Long: `Evaluate one arithmetic expression and print the result.

Operators: + - * / % ^ (also **), // for floor division.
Functions: ` + strings.Join(calculator.Functions(), " ") + `.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, strings.Join(args, " "), vars, false, echo)
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, `name=value variable definition (any number of times)`)
	cmd.Flags().BoolVar(&echo, "echo", false, "print the expression before the result")
	return cmd
}

func newNLCmd() *cobra.Command {
	var vars []string
	var echo bool
	cmd := &cobra.Command{
		Use:   "nl <phrase>",
		Short: "Evaluate a natural-language phrase",
		Long: `Rewrite informal wording like "square root of 16" or "2 to the power of 5"
into expression notation, then evaluate it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, strings.Join(args, " "), vars, true, echo)
		},
	}
	cmd.Flags().StringArrayVar(&vars, "var", nil, `name=value variable definition (any number of times)`)
	cmd.Flags().BoolVar(&echo, "echo", false, "print the canonical expression before the result")
	return cmd
}

func runEval(cmd *cobra.Command, input string, vars []string, nl, echo bool) error {
	sess := calculator.NewSession()
	for _, d := range vars {
		name, val, err := parseVarDef(d)
		if err != nil {
			return err
		}
		if err := sess.Set(name, val); err != nil {
			return err
		}
	}
	if nl {
		input = calculator.Normalize(input)
	}
	if echo {
		fmt.Fprintf(cmd.OutOrStdout(), "%s : ", input)
	}
	res, err := sess.Evaluate(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}

// parseVarDef parses a name=value definition. The value may itself be an
// expression, e.g. --var x=2^10.
func parseVarDef(s string) (string, float64, error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", 0, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
	}
	name := strings.TrimSpace(d[0])
	v, err := calculator.EvalString(strings.TrimSpace(d[1]))
	if err != nil {
		return "", 0, fmt.Errorf("setting %s: %w", name, err)
	}
	return name, v, nil
}
