package cli

import (
	"fmt"

	"clipgrep/internal/export"
	"clipgrep/internal/timecode"
	"clipgrep/internal/types"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <transcript>",
		Short: "Print every block of a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}
			items, err := s.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printItems(cmd, items)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query> [transcript...]",
		Short: "Search across transcripts and show matches with collapsed context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var ids []string
			if len(args) > 1 {
				ids = args[1:]
			}
			if err := s.Query(ctx, args[0], ids); err != nil {
				return err
			}
			matched := s.Matched()
			if len(matched) == 0 {
				cmd.Println("no matches")
				return nil
			}

			expandAll, _ := cmd.Flags().GetBool("all")
			passes, _ := cmd.Flags().GetInt("context")

			for _, id := range matched {
				if expandAll {
					s.ExpandAll(id)
				}
				items, err := s.Render(ctx, id)
				if err != nil {
					return err
				}
				// Each pass expands every hidden marker once, exactly as
				// clicking them all in the UI would.
				for p := 0; p < passes; p++ {
					for _, it := range items {
						if it.Kind == types.ItemHiddenRun {
							s.ExpandContext(id, it.Direction, it.PivotLine)
						}
					}
					if items, err = s.Render(ctx, id); err != nil {
						return err
					}
				}

				cmd.Printf("== %s ==\n", id)
				printItems(cmd, items)
			}
			return nil
		},
	}
	cmd.Flags().Int("context", 0, "Expansion passes around matches")
	cmd.Flags().Bool("all", false, "Show whole transcripts instead of windows")
	return cmd
}

func newClipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip <transcript>",
		Short: "Mark a time range in one transcript and print its export command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := newSession(cmd)
			if err != nil {
				return err
			}
			id := args[0]

			startStr, _ := cmd.Flags().GetString("start")
			endStr, _ := cmd.Flags().GetString("end")
			label, _ := cmd.Flags().GetString("label")

			start, err := timecode.Parse(startStr)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := timecode.Parse(endStr)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			// Sanity-check the transcript exists before binding the clip.
			if _, err := s.Open(cmd.Context(), id); err != nil {
				return err
			}

			sel := s.Selection()
			if err := sel.SetRange(start, end, id, label); err != nil {
				return err
			}

			media, _ := cmd.Flags().GetString("media")
			if media == "" {
				if media, err = export.MediaFor(id, cfg.MediaDir); err != nil {
					return err
				}
			}

			line, err := export.CommandLine(cfg.FFmpegPath, media, sel)
			if err != nil {
				return err
			}
			cmd.Println(line)

			if copyIt, _ := cmd.Flags().GetBool("copy"); copyIt {
				if err := clipboard.WriteAll(line); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				cmd.PrintErrln("copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().String("start", "", "Clip start (HH:MM:SS.mmm)")
	cmd.Flags().String("end", "", "Clip end (HH:MM:SS.mmm)")
	cmd.Flags().String("label", "", "Descriptive label for the clip")
	cmd.Flags().String("media", "", "Media file override")
	cmd.Flags().Bool("copy", false, "Copy the command to the clipboard")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
