package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranshuparmar/bundlecheck/pkg/model"
)

func line(layer model.Layer, label, value string, status model.Status) model.ResultLine {
	return model.ResultLine{Layer: layer, Label: label, Value: value, Status: status}
}

func TestWarnings(t *testing.T) {
	for name, tc := range map[string]struct {
		lines []model.ResultLine
		want  []string
	}{
		"consistent": {
			lines: []model.ResultLine{
				line(model.LayerAPI, LabelRuntime, "com.example.app", model.StatusOK),
				line(model.LayerFile, "Info.plist", "com.example.app", model.StatusOK),
				line(model.LayerCertificate, LabelProfile, "T.com.example.app", model.StatusOK),
			},
		},
		"wildcard profile": {
			lines: []model.ResultLine{
				line(model.LayerFile, "Info.plist", "com.example.app", model.StatusOK),
				line(model.LayerCertificate, LabelProfile, "T.*", model.StatusOK),
			},
		},
		"runtime differs": {
			lines: []model.ResultLine{
				line(model.LayerAPI, LabelRuntime, "com.hooked.app", model.StatusOK),
				line(model.LayerFile, "Info.plist", "com.example.app", model.StatusOK),
			},
			want: []string{`Runtime identifier "com.hooked.app" differs from Info.plist identifier "com.example.app"`},
		},
		"re-signed": {
			lines: []model.ResultLine{
				line(model.LayerFile, "Info.plist", "com.example.app", model.StatusOK),
				line(model.LayerCertificate, LabelProfile, "OTHER.com.resigner.app", model.StatusOK),
			},
			want: []string{`Profile application-identifier "OTHER.com.resigner.app" does not cover Info.plist identifier "com.example.app" (bundle may have been re-signed)`},
		},
		"falls back to runtime": {
			lines: []model.ResultLine{
				line(model.LayerAPI, LabelRuntime, "com.example.app", model.StatusOK),
				line(model.LayerFile, "Info.plist", "file not found", model.StatusNotFound),
				line(model.LayerCertificate, LabelProfile, "OTHER.com.resigner.app", model.StatusOK),
			},
			want: []string{`Profile application-identifier "OTHER.com.resigner.app" does not cover runtime identifier "com.example.app" (bundle may have been re-signed)`},
		},
		"unreadable app id": {
			lines: []model.ResultLine{
				line(model.LayerCertificate, LabelProfile, ValueParseKeyFailed, model.StatusParseFailed),
			},
			want: []string{"Provisioning profile is present but its application-identifier could not be read"},
		},
		"read error": {
			lines: []model.ResultLine{
				line(model.LayerCertificate, LabelReadError, "permission denied", model.StatusReadError),
			},
			want: []string{"Provisioning profile is present but could not be read"},
		},
		"empty plist identifier": {
			lines: []model.ResultLine{
				line(model.LayerAPI, LabelRuntime, "com.example.app", model.StatusOK),
				line(model.LayerFile, "Info.plist", "", model.StatusOK),
			},
			want: []string{`Runtime identifier "com.example.app" differs from Info.plist identifier ""`},
		},
		"simulator": {
			lines: []model.ResultLine{
				line(model.LayerFile, "Info.plist", "com.example.app", model.StatusOK),
				line(model.LayerCertificate, LabelProfile, ValueNotPresent, model.StatusNotPresent),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := Warnings(tc.lines)
			if len(tc.want) == 0 {
				require.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
