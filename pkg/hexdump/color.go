package hexdump

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Role identifies a part of the output that can be colored.
type Role int

const (
	// RoleAddress is the offset column.
	RoleAddress Role = iota
	// RoleHex is an annotated byte.
	RoleHex
	// RoleLabelName is the text of a label before ": ".
	RoleLabelName
	// RoleLabelValue is the rest of a label.
	RoleLabelValue
	// RoleError is an error label and the bytes it covers.
	RoleError

	numRoles

	noRole Role = -1
)

var roleNames = [numRoles]string{
	RoleAddress:    "address",
	RoleHex:        "hex",
	RoleLabelName:  "label_name",
	RoleLabelValue: "label_value",
	RoleError:      "error",
}

func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole returns the role with the given name, as printed by Role.String.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if strings.EqualFold(n, name) {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("unknown color role %q", name)
}

// Palette maps roles to terminal attributes.
type Palette map[Role][]color.Attribute

// DefaultPalette returns the standard hexnote colors.
func DefaultPalette() Palette {
	return Palette{
		RoleAddress:    {color.FgGreen},
		RoleHex:        {color.FgBlue},
		RoleLabelName:  {color.FgMagenta},
		RoleLabelValue: {color.FgBlue},
		RoleError:      {color.FgRed},
	}
}

// ColorPolicy decides how each role is painted. The zero value paints
// nothing.
//
// A ColorPolicy is a plain value: it does not look at NO_COLOR, TERM or
// the terminal, and it ignores color.NoColor.
type ColorPolicy struct {
	colors [numRoles]*color.Color
}

// NoColor returns a policy that leaves all text unchanged.
func NoColor() ColorPolicy {
	return ColorPolicy{}
}

// DefaultColors returns a policy painting with DefaultPalette.
func DefaultColors() ColorPolicy {
	return NewColorPolicy(DefaultPalette())
}

// NewColorPolicy returns a policy painting each role of p. Roles missing
// from p are left uncolored.
func NewColorPolicy(p Palette) ColorPolicy {
	var cp ColorPolicy
	for role, attrs := range p {
		if role < 0 || role >= numRoles || len(attrs) == 0 {
			continue
		}
		c := color.New(attrs...)
		c.EnableColor()
		cp.colors[role] = c
	}
	return cp
}

// Enabled reports whether any role is painted.
func (p ColorPolicy) Enabled() bool {
	for _, c := range p.colors {
		if c != nil {
			return true
		}
	}
	return false
}

// Paint wraps text in the escape sequences for role.
func (p ColorPolicy) Paint(role Role, text string) string {
	if text == "" || role < 0 || role >= numRoles || p.colors[role] == nil {
		return text
	}
	return p.colors[role].Sprint(text)
}

// paintLabel colors "name: value" labels in two parts. Labels of error
// annotations are painted whole.
func (p ColorPolicy) paintLabel(a Annotation) string {
	if a.Kind == KindError {
		return p.Paint(RoleError, a.Label)
	}
	name, value, ok := strings.Cut(a.Label, ": ")
	if !ok {
		return p.Paint(RoleLabelValue, a.Label)
	}
	return p.Paint(RoleLabelName, name) + ": " + p.Paint(RoleLabelValue, value)
}

var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ParseColor reads a color such as "cyan", "hi-red" or "bold+yellow".
func ParseColor(s string) ([]color.Attribute, error) {
	var attrs []color.Attribute
	for _, part := range strings.Split(strings.ToLower(s), "+") {
		if part == "bold" {
			attrs = append(attrs, color.Bold)
			continue
		}
		name, hi := strings.CutPrefix(part, "hi-")
		fg, ok := colorNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown color %q", part)
		}
		if hi {
			fg += color.FgHiBlack - color.FgBlack
		}
		attrs = append(attrs, fg)
	}
	return attrs, nil
}

// ParsePalette overlays role=color settings on DefaultPalette.
func ParsePalette(overrides map[string]string) (Palette, error) {
	p := DefaultPalette()
	for roleName, colorName := range overrides {
		role, err := ParseRole(roleName)
		if err != nil {
			return nil, err
		}
		attrs, err := ParseColor(colorName)
		if err != nil {
			return nil, fmt.Errorf("color for %s: %w", role, err)
		}
		p[role] = attrs
	}
	return p, nil
}
