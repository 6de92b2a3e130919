package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		rows, seats                 int
		aisles, premium, accessible []int
		disabled                    []string
		out                         string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a layout from flags",
		Long: `Build a layout from flags and write it as TOML.

Without --aisle the default aisles (after seats 5 and 10) are kept where
they still fit.  Disabled seats are seat ids such as A3.  Without --out
the layout is printed to stdout.`,
		Example: `  layoutctl generate --rows 8 --seats 12 --premium 7,8 --disabled A1,A12 --out hall.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := a.engine()
			cfg, err := eng.Resize(layout.Default(), rows, seats)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("aisle") {
				if cfg, err = eng.SetAisles(cfg, aisles); err != nil {
					return err
				}
			}
			if flags.Changed("premium") {
				if cfg, err = eng.SetPremiumRows(cfg, premium); err != nil {
					return err
				}
			}
			if flags.Changed("accessible") {
				if cfg, err = eng.SetAccessibleRows(cfg, accessible); err != nil {
					return err
				}
			}
			for _, id := range disabled {
				p, err := eng.ParseSeatID(id)
				if err != nil {
					return err
				}
				cfg.DisabledSeats = append(cfg.DisabledSeats, p)
			}
			cfg = cfg.Normalize()
			if err := eng.Validate(cfg); err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug("generated layout", "rows", cfg.RowCount, "seats_per_row", cfg.SeatsPerRow, "disabled", len(cfg.DisabledSeats))
			if out == "" {
				return encodeConfig(cmd.OutOrStdout(), cfg)
			}
			if err := writeConfig(out, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("✓ wrote "+out))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&rows, "rows", layout.DefaultRows, "number of rows")
	f.IntVar(&seats, "seats", layout.DefaultSeatsPerRow, "seats per row")
	f.IntSliceVar(&aisles, "aisle", nil, "aisle after these seat numbers")
	f.IntSliceVar(&premium, "premium", nil, "premium rows (1-based)")
	f.IntSliceVar(&accessible, "accessible", nil, "accessible rows (1-based)")
	f.StringSliceVar(&disabled, "disabled", nil, "disabled seat ids, e.g. A3,B4")
	f.StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
