package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

func sampleResult() model.Result {
	return model.Result{
		Bundle: "Example.app",
		Lines: []model.ResultLine{
			{Layer: model.LayerAPI, Label: "Bundle.main", Value: "com.example.app", Status: model.StatusOK},
			{Layer: model.LayerFile, Label: "Info.plist", Value: "file not found", Status: model.StatusNotFound},
			{Layer: model.LayerCertificate, Label: "Provisioning profile", Value: "TEAMID.com.example.app", Status: model.StatusOK},
			{Layer: model.LayerCertificate, Label: "Signing team", Value: "Evil\x1b[2JCorp", Status: model.StatusOK},
		},
		Warnings: []string{"Runtime identifier differs"},
	}
}

func TestRenderStandard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStandard(&buf, sampleResult(), false))
	out := buf.String()

	for _, sub := range []string{
		"Bundle: Example.app",
		"[API layer] Bundle.main:\n  com.example.app\n",
		"[File layer] Info.plist:\n  file not found\n",
		"[Certificate layer] Provisioning profile:\n  TEAMID.com.example.app\n",
		`Evil\x1b[2JCorp`,
		"Warnings:",
		"  • Runtime identifier differs",
	} {
		assert.Contains(t, out, sub)
	}
	assert.NotContains(t, out, "\x1b")

	api := strings.Index(out, "[API layer]")
	file := strings.Index(out, "[File layer]")
	cert := strings.Index(out, "[Certificate layer]")
	assert.True(t, api < file && file < cert, "lines must keep inspection order")
}

func TestRenderStandardColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderStandard(&buf, sampleResult(), true))
	out := buf.String()

	assert.Contains(t, out, "\x1b[")
	// the only raw ESC bytes are our own color sequences
	assert.Contains(t, out, `Evil\x1b[2JCorp`)
}

func TestRenderShort(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderShort(&buf, sampleResult(), false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "api Bundle.main: com.example.app", lines[0])
	assert.Equal(t, "file Info.plist: file not found", lines[1])
	assert.Equal(t, "certificate Provisioning profile: TEAMID.com.example.app", lines[2])
}

func TestRenderWarnings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWarnings(&buf, nil, false))
	assert.Equal(t, "No warnings.\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderWarnings(&buf, []string{"a", "b"}, false))
	assert.Equal(t, "Warnings:\n  • a\n  • b\n", buf.String())
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(sampleResult())
	require.NoError(t, err)

	var got model.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sampleResult(), got)
	assert.Contains(t, out, `"status": "not_found"`)

	out, err = ToJSON(model.Result{})
	require.NoError(t, err)
	assert.Contains(t, out, `"lines": []`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrinterKeepsFirstError(t *testing.T) {
	p := NewPrinter(failingWriter{})
	p.Println("a")
	p.Printf("%s", "b")
	assert.EqualError(t, p.Err(), "closed")
}

func TestRenderersReturnWriteError(t *testing.T) {
	r := sampleResult()
	for name, render := range map[string]func() error{
		"standard":    func() error { return RenderStandard(failingWriter{}, r, false) },
		"short":       func() error { return RenderShort(failingWriter{}, r, true) },
		"warnings":    func() error { return RenderWarnings(failingWriter{}, r.Warnings, false) },
		"no warnings": func() error { return RenderWarnings(failingWriter{}, nil, false) },
	} {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, render(), "closed")
		})
	}
}
