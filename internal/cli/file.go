package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iliyamo/cinema-seat-layout/internal/layout"
)

// readConfig decodes a TOML layout file.  Unknown keys are rejected so a
// misspelled field does not silently fall back to its zero value.
func readConfig(path string) (layout.Config, error) {
	var cfg layout.Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return layout.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return layout.Config{}, fmt.Errorf("read %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg.Normalize(), nil
}

func encodeConfig(w io.Writer, cfg layout.Config) error {
	return toml.NewEncoder(w).Encode(cfg.Normalize())
}

// writeConfig replaces path with cfg.  The file is written in full before
// the rename so a failed write leaves the old layout intact.
func writeConfig(path string, cfg layout.Config) error {
	var buf bytes.Buffer
	if err := encodeConfig(&buf, cfg); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
