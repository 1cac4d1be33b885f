// Package config loads hexnote configuration and layout files. YAML, JSON
// and CUE are all read through CUE, so any of them can hold the same data.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// LoadValueFromReader reads YAML (or JSON, which YAML accepts) from r.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildData(cuecontext.New(), "", data, false)
}

// LoadValue reads the file or directory at path.
//
// Directories and .cue files go through load.Instances so CUE packages and
// imports work. Anything else is read as a single data file: .json is
// compiled directly and every other extension is parsed as YAML.
func LoadValue(path string) (cue.Value, error) {
	return loadValue(cuecontext.New(), path)
}

func loadValue(ctx *cue.Context, path string) (cue.Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() || strings.EqualFold(filepath.Ext(path), ".cue") {
		return buildInstance(ctx, path, info.IsDir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}
	return buildData(ctx, path, data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// LoadFromFile decodes the file or directory at path into a T, using the
// json struct tags of T.
//
//	f, err := LoadFromFile[layout.File]("ccsds.yaml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	var out T
	if err := val.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &out, nil
}

func buildInstance(ctx *cue.Context, path string, dir bool) (cue.Value, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{Dir: filepath.Dir(abs), DataFiles: true}
	arg := abs
	if dir {
		cfg.Dir, arg = abs, "."
	}
	instances := load.Instances([]string{arg}, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	if err := instances[0].Err; err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", err)
	}

	val := ctx.BuildInstance(instances[0])
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildData(ctx *cue.Context, name string, data []byte, json bool) (cue.Value, error) {
	var val cue.Value
	if json {
		val = ctx.CompileBytes(data, cue.Filename(name))
	} else {
		file, err := yaml.Extract(name, data)
		if err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
		}
		val = ctx.BuildFile(file)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

// LoadAndUnifyPaths loads every file matching patterns and unifies them
// into a single value. Patterns may use ~ for the home directory and glob
// syntax. Patterns that match nothing are skipped; conflicting values across
// files are an error. With no files at all the result is an empty struct.
func LoadAndUnifyPaths(patterns []string) (cue.Value, error) {
	ctx := cuecontext.New()
	val := ctx.CompileString("{}")

	for _, pattern := range patterns {
		matches, err := filepath.Glob(ExpandHome(pattern))
		if err != nil {
			return cue.Value{}, fmt.Errorf("invalid config path %q: %w", pattern, err)
		}

		for _, path := range matches {
			v, err := loadValue(ctx, path)
			if err != nil {
				return cue.Value{}, fmt.Errorf("failed to load %s: %w", path, err)
			}
			val = val.Unify(v)
		}
	}

	if err := val.Validate(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to unify config: %w", err)
	}
	return val, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
