package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want Mode
	}{
		{ModeAuto, ModeText},
		{ModeText, ModeText},
		{ModeJSON, ModeJSON},
		{ModeYAML, ModeYAML},
		{Mode("bogus"), ModeText}, // invalid falls back to auto
	}
	for _, tt := range tests {
		r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode %q", tt.mode)
	}
}

func TestPlainStylesAreNoOp(t *testing.T) {
	r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, ModeText)
	assert.Equal(t, "hello", r.Styles().Error.Render("hello"))
	assert.Equal(t, "hello", r.Styles().Bold.Render("hello"))
}

func TestJSONOutput(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count": 3}`, out.String())
}

func TestYAMLOutput(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeYAML)
	require.NoError(t, r.YAML(map[string]string{"status": "passed"}))
	assert.Equal(t, "status: passed\n", out.String())
}

func TestStreamSeparation(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)
	r.Println("result")
	r.Errorln("oops")
	assert.Equal(t, "result\n", out.String())
	assert.Equal(t, "oops\n", errOut.String())
}
