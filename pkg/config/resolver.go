package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"github.com/alecthomas/kong"
)

// FlagPath returns the config path holding the value for a flag:
// --byte-order is read from byte_order.
func FlagPath(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// Resolver returns a kong.Resolver that supplies flag defaults from val.
// Flags with no matching key are left alone.
func Resolver(val cue.Value) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v := val.LookupPath(cue.ParsePath(FlagPath(flag.Name)))
		if !v.Exists() {
			return nil, nil
		}
		return scalar(v, flag.Name)
	})
}

// KongLoader is a kong.ConfigurationLoader for YAML and JSON config files.
func KongLoader(r io.Reader) (kong.Resolver, error) {
	val, err := LoadValueFromReader(r)
	if err != nil {
		return nil, err
	}
	return Resolver(val), nil
}

func scalar(v cue.Value, flag string) (any, error) {
	switch v.IncompleteKind() {
	case cue.StringKind:
		return v.String()
	case cue.BoolKind:
		return v.Bool()
	case cue.IntKind:
		n, err := v.Int64()
		return int(n), err
	case cue.FloatKind, cue.NumberKind:
		return v.Float64()
	case cue.ListKind:
		return joinList(v, flag)
	case cue.StructKind:
		return joinStruct(v, flag)
	}
	return nil, fmt.Errorf("config key %s: unsupported value of kind %s", FlagPath(flag), v.IncompleteKind())
}

// joinList renders a list the way kong splits slice flags.
func joinList(v cue.Value, flag string) (string, error) {
	iter, err := v.List()
	if err != nil {
		return "", err
	}
	var parts []string
	for iter.Next() {
		s, err := text(iter.Value(), flag)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ","), nil
}

// joinStruct renders a struct as key=value pairs for map flags.
func joinStruct(v cue.Value, flag string) (string, error) {
	iter, err := v.Fields()
	if err != nil {
		return "", err
	}
	var parts []string
	for iter.Next() {
		s, err := text(iter.Value(), flag)
		if err != nil {
			return "", err
		}
		parts = append(parts, iter.Selector().Unquoted()+"="+s)
	}
	return strings.Join(parts, ";"), nil
}

func text(v cue.Value, flag string) (string, error) {
	switch v.IncompleteKind() {
	case cue.StringKind:
		return v.String()
	case cue.BoolKind:
		b, err := v.Bool()
		return strconv.FormatBool(b), err
	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		return strconv.FormatFloat(f, 'f', -1, 64), err
	}
	return "", fmt.Errorf("config key %s: unsupported element of kind %s", FlagPath(flag), v.IncompleteKind())
}
