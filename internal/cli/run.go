package cli

import (
	"fmt"
	"os"

	"clipgrep/internal/config"
	"clipgrep/internal/ports/adapters/fsstore"
	"clipgrep/internal/session"
	"clipgrep/internal/types"

	"github.com/spf13/cobra"
)

func newSession(cmd *cobra.Command) (*session.Session, config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("config: %w", err)
	}

	store := fsstore.New(cfg.TranscriptsDir)
	s := session.New(session.Deps{
		Source: store,
		Search: store,
		Logf:   logf(cmd),
	})
	return s, cfg, nil
}

func logf(cmd *cobra.Command) func(string, ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func printItems(cmd *cobra.Command, items []types.RenderItem) {
	for _, it := range items {
		switch it.Kind {
		case types.ItemHiddenRun:
			cmd.Printf("    ... %d lines hidden (%s) ...\n", it.Hidden, it.Direction)
		case types.ItemBlock:
			mark := " "
			if it.Highlight.Any() {
				mark = "*"
			}
			b := it.Block
			if b.Timed {
				cmd.Printf("%s [%s --> %s] %s\n", mark, b.Start, b.End, b.Text)
			} else {
				cmd.Printf("%s %s\n", mark, b.Text)
			}
		}
	}
}
