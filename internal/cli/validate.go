package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
)

// errInvalid is returned after the validation failure has been printed.
var errInvalid = errors.New("layout is invalid")

func (a *app) validateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a layout file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(file)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := a.engine().Validate(cfg); err != nil {
				fmt.Fprintln(w, styleError.Render("✗ "+err.Error()))
				var verr *layout.ValidationError
				if errors.As(err, &verr) {
					fmt.Fprintln(w, styleDim.Render("  field: "+verr.Field))
				}
				return fmt.Errorf("%s: %w", file, errInvalid)
			}
			fmt.Fprintln(w, styleSuccess.Render(fmt.Sprintf("✓ %s: %d rows x %d seats", file, cfg.RowCount, cfg.SeatsPerRow)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "layout file (TOML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
