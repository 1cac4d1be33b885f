package main

import (
	"fmt"

	"github.com/brianm/hexnote/pkg/hexdump"
)

// colorPolicy settles --color against the environment. In auto mode color
// is used only when stdout is a terminal, NO_COLOR is not set and TERM is
// not dumb. The palette is checked whatever the mode.
func colorPolicy(mode string, palette map[string]string, s *Streams) (hexdump.ColorPolicy, error) {
	p, err := hexdump.ParsePalette(palette)
	if err != nil {
		return hexdump.ColorPolicy{}, fmt.Errorf("invalid palette: %w", err)
	}

	switch mode {
	case "never":
		return hexdump.NoColor(), nil
	case "always":
	case "auto", "":
		if !colorCapable(s) {
			return hexdump.NoColor(), nil
		}
	default:
		return hexdump.ColorPolicy{}, fmt.Errorf("invalid color mode %q", mode)
	}

	return hexdump.NewColorPolicy(p), nil
}

// colorCapable follows no-color.org: NO_COLOR disables color when present,
// even if empty.
func colorCapable(s *Streams) bool {
	lookup := s.LookupEnv
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if term, _ := lookup("TERM"); term == "dumb" {
		return false
	}
	return s.IsTerminal != nil && s.IsTerminal()
}
