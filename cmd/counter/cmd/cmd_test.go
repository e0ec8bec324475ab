package cmd

import (
	"bytes"
	"context"
	stderrors "errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/counter/cmd/counter/internal/config"
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/engine"
	"github.com/go-drift/counter/pkg/errors"
	"github.com/go-drift/counter/pkg/render"
	"github.com/go-drift/counter/pkg/widgets"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	for _, name := range []string{"COUNTER_START", "COUNTER_LOCALE", "COUNTER_FORMAT", "COUNTER_VERBOSE", "COUNTER_TRACE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Cleanup(func() {
		errors.SetHandler(nil)
		core.SetErrorWidgetBuilder(nil)
	})

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "counter version 0.1.0-dev (built unknown)\n", res.stdout)
}

func TestRender_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default start", nil, "count: 5"},
		{"increment", []string{"--press", "increment"}, "count: 6"},
		{"two decrements", []string{"--press", "-,-"}, "count: 3"},
		{"zero then decrement", []string{"--start", "0", "-p", "d"}, "count: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--dir", t.TempDir()}, tt.args...)
			res := execute(t, "", args...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, strings.TrimRight(strings.SplitN(res.stdout, "\n", 2)[0], " "))
		})
	}
}

func TestRender_JSONUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "counter.yaml"), []byte(`
counter:
  start: 10
  incrementLabel: up
  decrementLabel: down
render:
  format: json
`), 0o644))

	res := execute(t, "", "render", "--dir", dir, "--press", "up,increment")
	require.NoError(t, res.err, res.stderr)

	node, err := render.UnmarshalNode([]byte(res.stdout))
	require.NoError(t, err)
	assert.Equal(t, []string{"count: 12", "up", "down"}, node.Texts())
}

func TestRender_PNGToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "counter.png")

	res := execute(t, "", "render", "--dir", dir, "--format", "png", "--out", out)
	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stdout)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRender_UnknownPress(t *testing.T) {
	res := execute(t, "", "render", "--dir", t.TempDir(), "--press", "reset")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `no control labelled "reset"`)
}

func TestRender_InvalidFormat(t *testing.T) {
	res := execute(t, "", "render", "--dir", t.TempDir(), "--format", "svg")
	require.Error(t, res.err)

	var ce *errors.CounterError
	require.ErrorAs(t, res.err, &ce)
	assert.Equal(t, errors.KindConfig, ce.Kind)
}

func TestRun_Interactive(t *testing.T) {
	res := execute(t, "+\n\nincrement\nbogus\n-\nq\n+\n", "run", "--dir", t.TempDir(), "--start", "1")
	require.NoError(t, res.err, res.stderr)

	var counts []string
	for _, line := range strings.Split(res.stdout, "\n") {
		if line = strings.TrimRight(line, " "); strings.HasPrefix(line, "count: ") {
			counts = append(counts, line)
		}
	}
	assert.Equal(t, []string{"count: 1", "count: 2", "count: 3", "count: 2"}, counts)
	assert.Contains(t, res.stderr, `unknown command "bogus"`)
}

func TestRun_EOFEndsLoop(t *testing.T) {
	res := execute(t, "-", "run", "--dir", t.TempDir(), "--format", "html")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "<div>count: 5</div>")
	assert.Contains(t, res.stdout, "<div>count: 4</div>")
}

func TestRun_VerboseLogs(t *testing.T) {
	res := execute(t, "q\n", "run", "--dir", t.TempDir(), "--verbose")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "resolved config")
	assert.Contains(t, res.stderr, "mounted root")
}

func TestRun_TraceWritesSpans(t *testing.T) {
	res := execute(t, "+\nq\n", "run", "--dir", t.TempDir(), "--trace")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "engine.Activate")
}

func TestControlLabel(t *testing.T) {
	c := &cli{cfg: &config.Resolved{IncrementLabel: "up", DecrementLabel: "down"}}

	tests := map[string]string{
		"+":         "up",
		"I":         "up",
		"increment": "up",
		"-":         "down",
		"dec":       "down",
		"Down":      "Down",
		"reset":     "reset",
	}
	for word, want := range tests {
		assert.Equal(t, want, c.controlLabel(word), word)
	}
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error {
	return f.closeErr
}

func TestWriteFile_ReportsCloseError(t *testing.T) {
	file := &failingCloser{closeErr: stderrors.New("disk full")}
	old := createFile
	createFile = func(string) (io.WriteCloser, error) { return file, nil }
	t.Cleanup(func() { createFile = old })

	err := writeFile("counter.png", func(w io.Writer) error {
		_, err := io.WriteString(w, "pixels")
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "pixels", file.String())
}

func TestWriteFile_WriteErrorWins(t *testing.T) {
	file := &failingCloser{closeErr: stderrors.New("disk full")}
	old := createFile
	createFile = func(string) (io.WriteCloser, error) { return file, nil }
	t.Cleanup(func() { createFile = old })

	err := writeFile("counter.png", func(io.Writer) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}

func loopCommand(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetErr(stderr)
	cmd.SetContext(context.Background())
	return cmd
}

func TestLoop_DisabledControlIsNotUnknown(t *testing.T) {
	session, err := engine.NewSession(widgets.ColumnOf(
		widgets.Text{Content: "count: 0"},
		widgets.ButtonOf("off", func() {}).WithDisabled(true),
	))
	require.NoError(t, err)
	defer session.Close()

	var stderr bytes.Buffer
	c := &cli{cfg: &config.Resolved{IncrementLabel: "increment", DecrementLabel: "decrement"}}
	err = c.loop(loopCommand(&stderr), session, strings.NewReader("off\nbogus\nq\n"))
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), `error: control is disabled: "off"`)
	assert.NotContains(t, stderr.String(), `unknown command "off"`)
	assert.Contains(t, stderr.String(), `unknown command "bogus"`)
}

func TestLoop_ClosedSessionEndsLoop(t *testing.T) {
	session, err := engine.NewSession(widgets.Text{Content: "count: 0"})
	require.NoError(t, err)
	session.Close()

	var stderr bytes.Buffer
	c := &cli{cfg: &config.Resolved{IncrementLabel: "increment", DecrementLabel: "decrement"}}
	err = c.loop(loopCommand(&stderr), session, strings.NewReader("+\n"))
	assert.ErrorIs(t, err, engine.ErrClosed)
	assert.NotContains(t, stderr.String(), "unknown command")
}
