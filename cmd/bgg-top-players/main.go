// Command bgg-top-players prints the BoardGameGeek top-ranked games
// rated best or recommended for a given number of players, as
// tab-separated lines.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/micadam/bgg"
	"github.com/micadam/bgg/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "bgg-top-players NUM_PLAYERS NUM_PAGES",
	Short:        "List top-ranked games suited to a number of players.",
	Long:         "Walks NUM_PAGES of the BoardGameGeek ranked listing (100 games per page)\nand prints every game voted best or recommended for NUM_PLAYERS players.",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := positiveInt(args[0], "NUM_PLAYERS")
		if err != nil {
			return err
		}
		pages, err := positiveInt(args[1], "NUM_PAGES")
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true
		return run(cmd, players, pages)
	},
}

// positiveInt parses a positional argument that must be a positive
// integer.
func positiveInt(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	return n, nil
}

func run(cmd *cobra.Command, players, pages int) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	client := bgg.NewClient(bgg.Config{})
	pipeline := report.New(client, logger)
	out := report.NewWriter(cmd.OutOrStdout())

	if err := out.WriteHeader(); err != nil {
		return err
	}

	err := pipeline.Run(cmd.Context(), players, pages, out.WriteRow)
	if err != nil {
		// An unexpected API message means the upstream contract broke;
		// dump the offending payload for diagnosis.
		var upstream *bgg.UpstreamError
		if errors.As(err, &upstream) {
			fmt.Fprintln(os.Stderr, string(upstream.Body))
		}
		logger.Error("report failed", "err", err)
		return err
	}
	return nil
}
