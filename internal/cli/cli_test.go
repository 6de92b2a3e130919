package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// run executes layoutctl with args and returns its stdout without colors.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(io.Discard)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return ansiRE.ReplaceAllString(out.String(), ""), err
}

const scenarioA = `row_count = 3
seats_per_row = 5
aisle_after_seat = [2]
premium_rows = [3]

[[disabled_seats]]
row = 1
seat = 2
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hall.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRender(t *testing.T) {
	path := writeFile(t, scenarioA)
	out, err := run(t, "render", "-f", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"3 rows x 5 seats",
		"A 1 2 | 3 4 5\n",
		"B 1 x | 3 4 5\n",
		"C 1 2 | 3 4 5  premium\n",
		"total 15  available 14  disabled 1  premium 5  accessible 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderGrid_Accessible(t *testing.T) {
	cfg := layout.Config{RowCount: 2, SeatsPerRow: 10, PremiumRows: []int{2}, AccessibleRows: []int{2}}
	grid, err := layout.Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := ansiRE.ReplaceAllString(renderGrid(grid), "")
	if !strings.Contains(out, "B  1  2") || !strings.Contains(out, "premium,accessible") {
		t.Fatalf("unexpected grid:\n%s", out)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		want    string
	}{
		{"valid", scenarioA, nil, "3 rows x 5 seats"},
		{"aisle at edge", "row_count = 3\nseats_per_row = 5\naisle_after_seat = [5]\n", errInvalid, "field: aisle_after_seat"},
		{"too many rows", "row_count = 21\nseats_per_row = 5\n", errInvalid, "field: row_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "validate", "-f", writeFile(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("expected %q in output:\n%s", tt.want, out)
			}
		})
	}
}

func TestValidate_WiderLimits(t *testing.T) {
	path := writeFile(t, "row_count = 30\nseats_per_row = 5\n")
	if _, err := run(t, "validate", "-f", path); err == nil {
		t.Fatalf("30 rows must fail with default limits")
	}
	out, err := run(t, "--max-rows", "40", "validate", "-f", path)
	if err != nil {
		t.Fatalf("expected 30 rows to pass with --max-rows 40: %v\n%s", err, out)
	}
}

func TestReadConfig_UnknownKey(t *testing.T) {
	path := writeFile(t, "row_count = 3\nseats_per_row = 5\npremium_row = [1]\n")
	_, err := readConfig(path)
	if err == nil || !strings.Contains(err.Error(), "premium_row") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	if _, err := run(t, "generate", "--rows", "4", "--seats", "8", "--premium", "4", "--accessible", "1", "--disabled", "a1,D8", "--out", path); err != nil {
		t.Fatalf("generate: %v", err)
	}
	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := layout.Config{
		RowCount:       4,
		SeatsPerRow:    8,
		AisleAfterSeat: []int{5},
		PremiumRows:    []int{4},
		AccessibleRows: []int{1},
		DisabledSeats:  []layout.Position{{Row: 0, Seat: 1}, {Row: 3, Seat: 8}},
	}
	if !cfg.Equal(want) {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := run(t, "generate", "--rows", "2", "--seats", "3", "--aisle", "1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "row_count = 2") || !strings.Contains(out, "aisle_after_seat = [1]") {
		t.Fatalf("unexpected toml:\n%s", out)
	}
}

func TestGenerate_Rejects(t *testing.T) {
	tests := [][]string{
		{"generate", "--rows", "0"},
		{"generate", "--seats", "5", "--aisle", "5"},
		{"generate", "--rows", "2", "--premium", "3"},
		{"generate", "--rows", "2", "--disabled", "C1"},
		{"generate", "--disabled", "1A"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Fatalf("expected %v to fail", args)
		}
	}
}

func TestToggle(t *testing.T) {
	path := writeFile(t, scenarioA)
	out, err := run(t, "toggle", "-f", path, "--seat", "C5", "--seat", "B2")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !strings.Contains(out, "1 of 15 seats disabled") {
		t.Fatalf("unexpected output %q", out)
	}
	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(cfg.DisabledSeats) != 1 || cfg.DisabledSeats[0] != (layout.Position{Row: 2, Seat: 5}) {
		t.Fatalf("expected only C5 disabled, got %v", cfg.DisabledSeats)
	}

	dest := filepath.Join(t.TempDir(), "copy.toml")
	if _, err := run(t, "toggle", "-f", path, "--seat", "C5", "--out", dest); err != nil {
		t.Fatalf("toggle to copy: %v", err)
	}
	copyCfg, _ := readConfig(dest)
	if len(copyCfg.DisabledSeats) != 0 {
		t.Fatalf("expected copy with no disabled seats, got %v", copyCfg.DisabledSeats)
	}
	if orig, _ := readConfig(path); len(orig.DisabledSeats) != 1 {
		t.Fatalf("--out must leave the source untouched")
	}

	if _, err := run(t, "toggle", "-f", path, "--seat", "D1"); !errors.Is(err, layout.ErrOutOfBounds) {
		t.Fatalf("expected bounds error, got %v", err)
	}
}

func TestToken(t *testing.T) {
	out, err := run(t, "token", "--secret", "cli-secret", "--sub", "7", "--role", "OWNER")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims["sub"] != float64(7) || claims["role"] != "OWNER" {
		t.Fatalf("unexpected claims %v", claims)
	}

	t.Setenv("JWT_SECRET", "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if _, err := run(t, "token"); err == nil {
		t.Fatalf("expected error without secret")
	}
}
