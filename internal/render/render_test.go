package render_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvloops/internal/config"
	"github.com/katalvlaran/lvloops/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestText(t *testing.T) {
	assert.Equal(t, "1 2\n4 3\n", render.Text([][]int{{1, 2}, {4, 3}}))
	assert.Equal(t, "-3 -2.5 9\n", render.Text([]float64{-3, -2.5, 9}))
	assert.Equal(t, "1 2 3\n", render.Text([]int{1, 2, 3}))
	assert.Equal(t, "12354\n", render.Text(int64(12354)))
	assert.Equal(t, "", render.Text([][]int{}))
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, config.FormatText, render.Resolve(config.FormatAuto, &buf), "buffers are not terminals")
	assert.Equal(t, config.FormatYAML, render.Resolve(config.FormatYAML, &buf))
}

func TestWrite_YAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := render.Result{Command: "spiral", Input: 2, Output: [][]int{{1, 2}, {4, 3}}}
	require.NoError(t, render.Write(&buf, config.FormatYAML, in))

	var out struct {
		Command string  `yaml:"command"`
		Input   int     `yaml:"input"`
		Output  [][]int `yaml:"output"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "spiral", out.Command)
	assert.Equal(t, 2, out.Input)
	assert.Equal(t, [][]int{{1, 2}, {4, 3}}, out.Output)
}

func TestWrite_PrettyAndText(t *testing.T) {
	var buf bytes.Buffer
	r := render.Result{Command: "nearest", Input: int64(321321), Output: int64(322113)}

	require.NoError(t, render.Write(&buf, config.FormatPretty, r))
	assert.Contains(t, buf.String(), "render.Result{")
	assert.Contains(t, buf.String(), `Command: "nearest"`)

	buf.Reset()
	require.NoError(t, render.Write(&buf, config.FormatAuto, r))
	assert.Equal(t, "322113\n", buf.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.Write(&buf, "xml", render.Result{})
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}
