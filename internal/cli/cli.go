// Package cli implements layoutctl, the offline companion of the layout
// service.
//
// # Commands
//
//   - generate: build a layout from flags and write it as TOML
//   - render: draw a layout file as a seat grid in the terminal
//   - validate: check a layout file against the engine's rules
//   - toggle: flip seats of a layout file between available and disabled
//   - token: mint a development JWT accepted by the server
//
// Layout files use the same field names as the HTTP API (row_count,
// seats_per_row, aisle_after_seat, ...).  All commands support --verbose
// (-v); the logger travels through the command context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
)

// app holds the engine settings shared by every command.
type app struct {
	maxRows  int
	maxSeats int
}

// engine builds the layout engine for the configured limits.  Row counts
// past the single-letter range switch to AA, AB, ... labels.
func (a *app) engine() *layout.Engine {
	opts := []layout.EngineOption{
		layout.WithLimits(layout.Limits{MaxRows: a.maxRows, MaxSeatsPerRow: a.maxSeats}),
	}
	if a.maxRows > layout.LetterCapacity {
		opts = append(opts, layout.WithLabeler(layout.ExtendedLabeler{}))
	}
	return layout.NewEngine(opts...)
}

// newRootCmd builds the command tree.  Logs go to logOut; command output
// goes to the command's stdout.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool
	a := &app{}

	root := &cobra.Command{
		Use:          "layoutctl",
		Short:        "Generate, inspect and edit cinema hall seat layouts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			l := charmlog.NewWithOptions(logOut, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			cmd.SetContext(logging.WithLogger(cmd.Context(), l))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().IntVar(&a.maxRows, "max-rows", layout.DefaultLimits.MaxRows, "largest accepted row count")
	root.PersistentFlags().IntVar(&a.maxSeats, "max-seats", layout.DefaultLimits.MaxSeatsPerRow, "largest accepted seats per row")

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.renderCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.toggleCmd())
	root.AddCommand(tokenCmd())

	return root
}

// Execute runs layoutctl with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}
