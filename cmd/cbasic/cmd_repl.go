package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nyaosorg/go-readline-ny"
	"github.com/spf13/cobra"

	"github.com/b33j0r/cbasic/interp"
)

func newReplCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "repl",
		Short:         "Start an interactive CBASIC session",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return runREPL(cmd.Context(), cfg)
		},
	}
}

func runREPL(ctx context.Context, cfg Config) error {
	if cfg.NoColor {
		color.NoColor = true
	}

	printBanner()
	log.Info("starting session", "prompt", cfg.Prompt)

	in := interp.New(os.Stdout)

	hist, err := newHistory(cfg.HistoryFile)
	if err != nil {
		return err
	}

	prompt := color.New(color.FgBlue).Sprint(cfg.Prompt)
	ed := &readline.Editor{
		PromptWriter: func(w io.Writer) (int, error) {
			return io.WriteString(w, prompt)
		},
		Writer:         os.Stdout,
		History:        hist,
		HistoryCycling: true,
	}

	for {
		line, err := ed.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, readline.CtrlC) {
				continue
			}
			if errors.Is(err, io.EOF) {
				printGoodbye()
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		hist.Add(line)

		if line == "EXIT" {
			printGoodbye()
			return nil
		}

		log.Debug("evaluating", "line", line)
		if err := in.EvalLine(line); err != nil {
			color.New(color.FgRed).Print("Parse error: ")
			fmt.Println(err)
		}
	}
}

func printBanner() {
	color.New(color.FgCyan).Println("========================================")
	color.New(color.FgGreen).Println("        WELCOME TO CBASIC REPL")
	color.New(color.FgMagenta).Println("        A Very Cool Experience")
	color.New(color.FgCyan).Println("========================================")
	color.New(color.FgYellow).Println("Type 'EXIT' to quit or 'PRINT' to see the stack.")
	fmt.Println()
}

func printGoodbye() {
	color.New(color.FgGreen).Println("Goodbye!")
}
