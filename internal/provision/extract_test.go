package provision

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWithDefaultDelimiters(t *testing.T) {
	for name, tc := range map[string]struct {
		content string
		marker  string
		want    string
		err     error
	}{
		"value": {
			content: "<key>application-identifier</key>\n\t\t<string>TEAMID.com.example.app</string>",
			marker:  AppIDMarker,
			want:    "TEAMID.com.example.app",
		},
		"first occurrence only": {
			content: "<key>TeamName</key><string>First</string><key>TeamName</key><string>Second</string>",
			marker:  TeamNameMarker,
			want:    "First",
		},
		"empty value": {
			content: "<key>TeamName</key><string></string>",
			marker:  TeamNameMarker,
			want:    "",
		},
		"value after other keys": {
			content: "<key>application-identifier</key><array><integer>1</integer></array><string>later</string>",
			marker:  AppIDMarker,
			want:    "later",
		},
		"missing marker": {
			content: "<key>Name</key><string>profile</string>",
			marker:  AppIDMarker,
			err:     ErrMarkerNotFound,
		},
		"marker is case sensitive": {
			content: "<key>teamname</key><string>x</string>",
			marker:  TeamNameMarker,
			err:     ErrMarkerNotFound,
		},
		"no delimiters after marker": {
			content: "<string>before</string><key>application-identifier</key><true/>",
			marker:  AppIDMarker,
			err:     ErrDelimiterNotFound,
		},
		"missing close": {
			content: "<key>application-identifier</key><string>TEAMID.com.example.app",
			marker:  AppIDMarker,
			err:     ErrDelimiterNotFound,
		},
		"close before open": {
			content: "<key>application-identifier</key></string><string>x",
			marker:  AppIDMarker,
			err:     ErrDelimiterNotFound,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ExtractWith(tc.content, tc.marker, OpenDelimiter, CloseDelimiter)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractWithCustomDelimiters(t *testing.T) {
	got, err := ExtractWith(`name = "value";`, "name", `"`, `";`)
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestDecodeBinary(t *testing.T) {
	data := append([]byte{0x30, 0x82, 0xff, 0x00, 0xc3}, []byte(AppIDMarker+"<string>ABCDE12345.com.example.app</string>")...)
	content := Decode(data)

	assert.True(t, utf8.ValidString(content))
	got, err := ExtractWith(content, AppIDMarker, OpenDelimiter, CloseDelimiter)
	require.NoError(t, err)
	assert.Equal(t, "ABCDE12345.com.example.app", got)
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xff, 0xfe, 0x00})
	f.Add([]byte("<string>\x80\x81</string>"))

	f.Fuzz(func(t *testing.T, data []byte) {
		got := []rune(Decode(data))
		if len(got) != len(data) {
			t.Fatalf("Decode(%q) produced %d runes, want %d", data, len(got), len(data))
		}
		for i, r := range got {
			if r != rune(data[i]) {
				t.Fatalf("Decode(%q)[%d] = %#x, want %#x", data, i, r, data[i])
			}
		}
	})
}
