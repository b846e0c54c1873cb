package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	calculator "github.com/abhisakh/Calculator"
)

func newReplCmd() *cobra.Command {
	var nl bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator",
		Long: `Read expressions line by line and print each result. Assignments like
"x = 5" bind variables that later expressions can use. Commands start
with a colon; :help lists them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(nl)
		},
	}
	cmd.Flags().BoolVar(&nl, "nl", false, "rewrite natural-language phrases before evaluating")
	return cmd
}

func runRepl(nl bool) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	histFile := historyPath()
	if histFile != "" {
		if f, err := os.Open(histFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histFile == "" {
			return
		}
		if f, err := os.Create(histFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	sess := calculator.NewSession()
	fmt.Println("calc — type an expression, or :help for commands")
	for {
		input, err := line.Prompt("calc> ")
		if err != nil {
			// ^C or ^D ends the session.
			fmt.Println()
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if strings.HasPrefix(input, ":") {
			if quit := replCommand(sess, input, &nl); quit {
				return nil
			}
			continue
		}
		if nl {
			input = calculator.Normalize(input)
		}
		res, err := sess.Evaluate(input)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}
		fmt.Println(green(res.String()))
	}
}

// replCommand handles a colon command and reports whether to quit.
func replCommand(sess *calculator.Session, input string, nl *bool) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Println(`:vars          list bound variables
:del <name>... unbind variables
:clear         unbind every variable
:nl            toggle natural-language rewriting
:funcs         list built-in functions
:quit          leave the calculator`)
	case ":vars":
		names := sess.Vars()
		if len(names) == 0 {
			fmt.Println("no variables bound")
			break
		}
		for _, name := range names {
			v, _ := sess.Lookup(name)
			fmt.Printf("%s = %s\n", name, calculator.FormatValue(v))
		}
	case ":del":
		if len(fields) < 2 {
			fmt.Println(yellow("usage: :del <name>..."))
			break
		}
		sess.Delete(fields[1:]...)
	case ":clear":
		sess.Clear()
	case ":nl":
		*nl = !*nl
		if *nl {
			fmt.Println("natural-language rewriting on")
		} else {
			fmt.Println("natural-language rewriting off")
		}
	case ":funcs":
		fmt.Println(strings.Join(calculator.Functions(), " "))
	default:
		fmt.Println(yellow("unknown command " + fields[0] + "; :help lists commands"))
	}
	return false
}

func complete(prefix string) []string {
	var out []string
	for _, name := range calculator.Functions() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calc_history")
}
