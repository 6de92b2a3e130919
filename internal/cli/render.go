package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
	"github.com/iliyamo/cinema-seat-layout/internal/logging"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleRowLabel   = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleRegular    = lipgloss.NewStyle().Foreground(colorGreen)
	stylePremium    = lipgloss.NewStyle().Foreground(colorAmber)
	styleAccessible = lipgloss.NewStyle().Foreground(colorBlue)
	styleDisabled   = lipgloss.NewStyle().Foreground(colorDim)
	styleAisle      = lipgloss.NewStyle().Foreground(colorDim)
	styleDim        = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess    = lipgloss.NewStyle().Foreground(colorGreen)
	styleError      = lipgloss.NewStyle().Foreground(colorRed)
)

func (a *app) renderCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a layout file as a seat grid",
		Long: `Draw a layout file as a seat grid.

Seats show their number; disabled seats show x.  A | marks an aisle after
the seat before it.  Premium and accessible rows are tagged at the end of
the row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(file)
			if err != nil {
				return err
			}
			grid, err := a.engine().Generate(cfg)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug("rendering layout", "file", file, "rows", cfg.RowCount, "seats_per_row", cfg.SeatsPerRow)
			printGrid(cmd.OutOrStdout(), grid)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "layout file (TOML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printGrid(w io.Writer, g layout.Grid) {
	sum := g.Summary()
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%d rows x %d seats", len(g), sum.Total/max(len(g), 1))))
	fmt.Fprint(w, renderGrid(g))
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("total %d  available %d  disabled %d  premium %d  accessible %d",
		sum.Total, sum.Available, sum.Disabled, sum.Premium, sum.Accessible)))
}

// renderGrid draws one line per row: the row label, the seats, and tags
// for premium and accessible rows.
func renderGrid(g layout.Grid) string {
	if len(g) == 0 {
		return ""
	}
	numWidth := len(strconv.Itoa(len(g[0])))
	labelWidth := 0
	for _, row := range g {
		if len(row) > 0 && len(row[0].RowLabel) > labelWidth {
			labelWidth = len(row[0].RowLabel)
		}
	}

	var b strings.Builder
	for _, row := range g {
		if len(row) == 0 {
			continue
		}
		b.WriteString(styleRowLabel.Render(fmt.Sprintf("%-*s", labelWidth, row[0].RowLabel)))
		for _, s := range row {
			b.WriteByte(' ')
			b.WriteString(seatCell(s, numWidth))
			if s.IsAisleBoundary {
				b.WriteString(styleAisle.Render(" |"))
			}
		}
		if tags := rowTags(row[0]); tags != "" {
			b.WriteString("  ")
			b.WriteString(styleDim.Render(tags))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func seatCell(s layout.Seat, width int) string {
	if s.Status == layout.StatusDisabled {
		return styleDisabled.Render(fmt.Sprintf("%*s", width, "x"))
	}
	text := fmt.Sprintf("%*d", width, s.SeatNumber)
	switch {
	case s.IsAccessible:
		return styleAccessible.Render(text)
	case s.Tier == layout.TierPremium:
		return stylePremium.Render(text)
	default:
		return styleRegular.Render(text)
	}
}

func rowTags(s layout.Seat) string {
	var tags []string
	if s.Tier == layout.TierPremium {
		tags = append(tags, "premium")
	}
	if s.IsAccessible {
		tags = append(tags, "accessible")
	}
	return strings.Join(tags, ",")
}
