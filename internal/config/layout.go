package config

import (
    "strconv"
    "strings"

    "github.com/iliyamo/cinema-seat-layout/internal/layout"
)

// LayoutDefaults describes the layout offered for a hall that has never
// been saved and has no recorded dimensions.
type LayoutDefaults struct {
    Rows        int
    SeatsPerRow int
    Aisles      []int
}

// LoadLayoutDefaults reads LAYOUT_DEFAULT_ROWS, LAYOUT_DEFAULT_SEATS_PER_ROW
// and LAYOUT_DEFAULT_AISLES (comma separated seat numbers).  Unparsable
// aisle entries are skipped.
func LoadLayoutDefaults() LayoutDefaults {
    def := layout.Default()
    return LayoutDefaults{
        Rows:        envInt("LAYOUT_DEFAULT_ROWS", def.RowCount),
        SeatsPerRow: envInt("LAYOUT_DEFAULT_SEATS_PER_ROW", def.SeatsPerRow),
        Aisles:      parseInts(envStr("LAYOUT_DEFAULT_AISLES", joinInts(def.AisleAfterSeat))),
    }
}

// Config returns the defaults as a layout config.  It is not validated.
func (d LayoutDefaults) Config() layout.Config {
    cfg := layout.Config{
        RowCount:       d.Rows,
        SeatsPerRow:    d.SeatsPerRow,
        AisleAfterSeat: append([]int(nil), d.Aisles...),
    }
    return cfg.Normalize()
}

func parseInts(s string) []int {
    out := []int{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(p)
        if p == "" {
            continue
        }
        if n, err := strconv.Atoi(p); err == nil {
            out = append(out, n)
        }
    }
    return out
}

func joinInts(v []int) string {
    parts := make([]string, len(v))
    for i, n := range v {
        parts[i] = strconv.Itoa(n)
    }
    return strings.Join(parts, ",")
}
