package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/logging"
)

func (a *app) toggleCmd() *cobra.Command {
	var (
		file, out string
		seats     []string
	)
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip seats between available and disabled",
		Long: `Flip seats between available and disabled.

Each --seat is toggled in order, so naming a seat twice leaves it as it
was.  The file is rewritten in place unless --out is given.`,
		Example: `  layoutctl toggle -f hall.toml --seat A3 --seat B4`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(file)
			if err != nil {
				return err
			}
			eng := a.engine()
			if err := eng.Validate(cfg); err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context())
			for _, id := range seats {
				if cfg, err = eng.ToggleSeatID(cfg, id); err != nil {
					return err
				}
				logger.Debug("toggled seat", "seat", id)
			}
			grid, err := eng.Generate(cfg)
			if err != nil {
				return err
			}
			dest := out
			if dest == "" {
				dest = file
			}
			if err := writeConfig(dest, cfg); err != nil {
				return err
			}
			sum := grid.Summary()
			fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("✓ wrote %s: %d of %d seats disabled", dest, sum.Disabled, sum.Total)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "layout file (TOML)")
	cmd.Flags().StringSliceVar(&seats, "seat", nil, "seat id to toggle, e.g. A3 (repeatable)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: rewrite --file)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("seat")
	return cmd
}
