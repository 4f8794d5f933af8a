package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFID(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want string
	}{
		{
			name: "requester beats url",
			in:   Inputs{RequesterFID: 2, URL: "https://frames.example/frames?userfid=3"},
			want: "2",
		},
		{
			name: "url query",
			in:   Inputs{URL: "https://frames.example/frames?userfid=3", State: `{"lastFid":"4"}`},
			want: "3",
		},
		{
			name: "state when url has none",
			in:   Inputs{URL: "https://frames.example/frames", State: `{"lastFid":"4"}`, SessionFID: "5"},
			want: "4",
		},
		{
			name: "session as last resort",
			in:   Inputs{URL: "https://frames.example/frames", SessionFID: "5"},
			want: "5",
		},
		{
			name: "malformed url fails soft",
			in:   Inputs{URL: "http://[::1]:namedport/frames?userfid=3"},
			want: "",
		},
		{
			name: "non-numeric query is ignored",
			in:   Inputs{URL: "/frames?userfid=null", State: `{"lastFid":"4"}`},
			want: "4",
		},
		{
			name: "negative query is ignored",
			in:   Inputs{URL: "/frames?userfid=-1"},
			want: "",
		},
		{
			name: "garbage state is ignored",
			in:   Inputs{State: "{not json"},
			want: "",
		},
		{
			name: "nothing",
			in:   Inputs{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFID(tt.in))
		})
	}
}

func TestExtractFID(t *testing.T) {
	assert.Equal(t, "7", ExtractFID("https://frames.example/?userfid=7"))
	assert.Equal(t, "", ExtractFID("https://frames.example/"))
	assert.Equal(t, "", ExtractFID("%zz"))
	assert.Equal(t, "", ExtractFID(""))
}

func TestState(t *testing.T) {
	assert.Equal(t, `{"lastFid":"9"}`, State{LastFID: "9"}.Encode())
	assert.Equal(t, "", State{}.Encode())
	assert.Equal(t, State{LastFID: "9"}, DecodeState(`{"lastFid":"9"}`))
	assert.Equal(t, State{}, DecodeState(""))
}

func TestValidFID(t *testing.T) {
	assert.True(t, ValidFID("12345"))
	assert.False(t, ValidFID(""))
	assert.False(t, ValidFID("12a"))
	assert.False(t, ValidFID("1.5"))
}
