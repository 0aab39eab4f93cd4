package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "https://tirea.learnnavi.org/api"

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		text         string
		reverse      bool
		languageCode string
		want         string
	}{
		{
			name:         "empty text lists words",
			baseURL:      testBaseURL,
			text:         "",
			reverse:      false,
			languageCode: "en",
			want:         testBaseURL + "/list/",
		},
		{
			name:         "empty text ignores the reverse flag",
			baseURL:      testBaseURL,
			text:         "",
			reverse:      true,
			languageCode: "en",
			want:         testBaseURL + "/list/",
		},
		{
			name:         "forward lookup",
			baseURL:      testBaseURL,
			text:         "fmawn",
			languageCode: "en",
			want:         testBaseURL + "/fwew/fmawn",
		},
		{
			name:         "reverse lookup",
			baseURL:      testBaseURL,
			text:         "forest",
			reverse:      true,
			languageCode: "en",
			want:         testBaseURL + "/fwew/r/en/forest",
		},
		{
			name:         "reverse lookup with another language",
			baseURL:      testBaseURL,
			text:         "Wald",
			reverse:      true,
			languageCode: "de",
			want:         testBaseURL + "/fwew/r/de/Wald",
		},
		{
			name:    "spaces are percent-encoded",
			baseURL: testBaseURL,
			text:    "oel ngati kameie",
			want:    testBaseURL + "/fwew/oel%20ngati%20kameie",
		},
		{
			name:    "slashes stay inside the segment",
			baseURL: testBaseURL,
			text:    "a/b",
			want:    testBaseURL + "/fwew/a%2Fb",
		},
		{
			name:    "question marks are percent-encoded",
			baseURL: testBaseURL,
			text:    "srak?",
			want:    testBaseURL + "/fwew/srak%3F",
		},
		{
			name:    "apostrophe is percent-encoded",
			baseURL: testBaseURL,
			text:    "na'rìng",
			want:    testBaseURL + "/fwew/na%27r%C3%ACng",
		},
		{
			name:    "decomposed characters are normalized",
			baseURL: testBaseURL,
			text:    "ta\u0308",
			want:    testBaseURL + "/fwew/t%C3%A4",
		},
		{
			name:    "trailing slash on the base URL",
			baseURL: testBaseURL + "/",
			text:    "fmawn",
			want:    testBaseURL + "/fwew/fmawn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Endpoint(tt.baseURL, tt.text, tt.reverse, tt.languageCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpoint_Shapes(t *testing.T) {
	texts := []string{"", "a", "kaltxì", "with space", "100%", "#tag", "ä/ì?"}
	for _, text := range texts {
		for _, reverse := range []bool{false, true} {
			got := Endpoint(testBaseURL, text, reverse, "en")
			switch {
			case text == "":
				assert.Equal(t, testBaseURL+"/list/", got)
			case reverse:
				rest := strings.TrimPrefix(got, testBaseURL+"/fwew/r/en/")
				assert.NotEqual(t, got, rest, "reverse endpoint for %q", text)
				assert.NotContains(t, rest, "/")
			default:
				rest := strings.TrimPrefix(got, testBaseURL+"/fwew/")
				assert.NotEqual(t, got, rest, "forward endpoint for %q", text)
				assert.NotContains(t, rest, "/")
				assert.NotContains(t, rest, "?")
				assert.NotContains(t, rest, "#")
			}
		}
	}
}

func TestDirection_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Direction
		wantErr bool
	}{
		{name: "forward", value: "forward", want: DirectionForward},
		{name: "reverse", value: "reverse", want: DirectionReverse},
		{name: "invalid", value: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var direction Direction
			err := direction.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid direction")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, direction)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, DirectionReverse, DirectionOf(true))
	assert.Equal(t, DirectionForward, DirectionOf(false))
	assert.True(t, DirectionReverse.IsReverse())
	assert.False(t, DirectionForward.IsReverse())
	assert.Equal(t, "reverse", DirectionReverse.String())

	direction := DirectionForward
	assert.Equal(t, "direction", direction.Type())
}
