package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/brianm/hexnote/pkg/layout"
	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *slog.Logger {
	logger := slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
	return logger
}

func testStreams(in []byte, env map[string]string, tty bool) (*Streams, *bytes.Buffer) {
	var out bytes.Buffer
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	return &Streams{
		Stdin:      bytes.NewReader(in),
		Stdout:     &out,
		LookupEnv:  lookup,
		IsTerminal: func() bool { return tty },
	}, &out
}

func parseCLI(t *testing.T, args ...string) *HexnoteCLI {
	t.Helper()
	var cli HexnoteCLI
	parser, err := kong.New(&cli, kong.Name("hexnote"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestRun_TypedFields(t *testing.T) {
	cli := parseCLI(t, "u8", "u16", "u32")
	s, out := testStreams([]byte{0x2a, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12}, nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Equal(t, strings.Join([]string{
		"00000000  2a 34 12 78 56 34 12",
		"         └──┘                                               u8: 42",
		"            └─────┘                                         u16: 4660",
		"                  └───────────┘                             u32: 305419896",
		"00000007",
		"",
	}, "\n"), out.String())
}

func TestRun_NoTypes(t *testing.T) {
	cli := parseCLI(t)
	s, out := testStreams([]byte("hello"), nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Equal(t, "00000000  68 65 6c 6c 6f\n00000005\n", out.String())
}

func TestRun_EmptyInput(t *testing.T) {
	cli := parseCLI(t)
	s, out := testStreams(nil, nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Equal(t, "00000000\n", out.String())
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packet.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x12, 0x34, 0, 0, 0, 0, 0x56, 0x78}, 0644))

	cli := parseCLI(t, "-f", path, "u16:magic", ".32", "u16:data")
	s, out := testStreams([]byte("ignored"), nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Contains(t, out.String(), "magic: 13330")
	require.Contains(t, out.String(), "data: 30806")
	require.Equal(t, 2, strings.Count(out.String(), "└"))
}

func TestRun_MissingFile(t *testing.T) {
	cli := parseCLI(t, "-f", filepath.Join(t.TempDir(), "nope.bin"), "u8")
	s, out := testStreams(nil, nil, false)

	err := cli.Run(testLogger(t), s)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Empty(t, out.String())
}

func TestRun_ByteOrder(t *testing.T) {
	cli := parseCLI(t, "--byte-order", "big", "u16")
	s, out := testStreams([]byte{0x12, 0x34}, nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Contains(t, out.String(), "u16: 4660")
}

func TestRun_InvalidByteOrder(t *testing.T) {
	cli := parseCLI(t, "--byte-order", "middle", "u16")
	s, out := testStreams([]byte{0x12, 0x34}, nil, false)

	require.ErrorContains(t, cli.Run(testLogger(t), s), "invalid byte order")
	require.Empty(t, out.String())
}

func TestRun_InvalidToken(t *testing.T) {
	cli := parseCLI(t, "u8", "u16:")
	s, out := testStreams([]byte{1, 2, 3}, nil, false)

	err := cli.Run(testLogger(t), s)
	require.ErrorIs(t, err, layout.ErrInvalidToken)
	require.ErrorContains(t, err, "field name cannot be empty")
	require.Empty(t, out.String())
}

func TestRun_Truncated(t *testing.T) {
	cli := parseCLI(t, "u16", "u32")
	s, out := testStreams([]byte{0x01, 0x00, 0xaa, 0xbb}, nil, false)

	err := cli.Run(testLogger(t), s)
	var te *layout.TruncatedError
	require.ErrorAs(t, err, &te)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"00000000  01 00 aa bb",
		"         └─────┘                                            u16: 1",
		"               └─────┘                                      u32: expected 4 bytes, only 2 available",
		"00000004",
	}, lines)
}

func TestRun_SkipPastEnd(t *testing.T) {
	cli := parseCLI(t, ".32")
	s, out := testStreams([]byte{1, 2}, nil, false)

	err := cli.Run(testLogger(t), s)
	require.ErrorIs(t, err, layout.ErrNotEnoughData)
	require.Empty(t, out.String())
}

func TestRun_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
byte_order: big
fields: ["u16:apid"]
label_format: "{{{name}}}={{{value}}}"
`), 0644))

	cli := parseCLI(t, "-l", path, "u8:flags")
	s, out := testStreams([]byte{0x12, 0x34, 0x07}, nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Contains(t, out.String(), "apid=4660")
	require.Contains(t, out.String(), "flags=7")
}

func TestRun_FlagsOverrideLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"byte_order": "big", "fields": ["u16:apid"]}`), 0644))

	cli := parseCLI(t, "-l", path, "--byte-order", "little", "--label-format", "{{{name}}} is {{{value}}}")
	s, out := testStreams([]byte{0x12, 0x34}, nil, false)

	require.NoError(t, cli.Run(testLogger(t), s))
	require.Contains(t, out.String(), "apid is 13330")
}

func TestRun_BadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("byte_order: big\n"), 0644))

	cli := parseCLI(t, "-l", path)
	s, _ := testStreams(nil, nil, false)

	require.ErrorContains(t, cli.Run(testLogger(t), s), "fields is required")
}

func TestParseCLI(t *testing.T) {
	cli := parseCLI(t, "-f", "data.bin", "-vv", "--color", "never", "--palette", "hex=cyan", "u8", "u16:len")

	require.Equal(t, []string{"u8", "u16:len"}, cli.Types)
	require.Equal(t, 2, cli.Verbose)
	require.Equal(t, "never", cli.Color)
	require.Equal(t, map[string]string{"hex": "cyan"}, cli.Palette)
	require.True(t, filepath.IsAbs(cli.File))
	require.Equal(t, "data.bin", filepath.Base(cli.File))
}

func TestParseCLI_InvalidColor(t *testing.T) {
	var cli HexnoteCLI
	parser, err := kong.New(&cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--color", "sometimes"})
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, 0).Info("hidden")
	require.Empty(t, buf.String())

	newLogger(&buf, 1).Info("shown")
	require.Contains(t, buf.String(), "shown")

	newLogger(&buf, 1).Debug("hidden")
	require.NotContains(t, buf.String(), "hidden")

	newLogger(&buf, 3).Debug("debugging")
	require.Contains(t, buf.String(), "debugging")
	require.NotContains(t, buf.String(), "\x1b[")
}
