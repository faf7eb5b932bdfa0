package paging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		opts     Options
		expected Params
	}{
		{
			name:     "no keys and no defaults",
			query:    "",
			expected: Params{Limit: Unlimited},
		},
		{
			name:     "limit and offset",
			query:    "limit=10&offset=30",
			expected: Params{Limit: 10, Offset: 30},
		},
		{
			name:     "default limit applies when absent",
			query:    "",
			opts:     Options{DefaultLimit: 25},
			expected: Params{Limit: 25},
		},
		{
			name:     "request overrides default",
			query:    "limit=5",
			opts:     Options{DefaultLimit: 25},
			expected: Params{Limit: 5},
		},
		{
			name:     "max caps the request",
			query:    "limit=5000",
			opts:     Options{MaxLimit: 100},
			expected: Params{Limit: 100},
		},
		{
			name:     "max caps unlimited",
			query:    "",
			opts:     Options{MaxLimit: 100},
			expected: Params{Limit: 100},
		},
		{
			name:     "negative limit clamps to zero",
			query:    "limit=-3",
			expected: Params{Limit: 0},
		},
		{
			name:     "malformed numbers ignored",
			query:    "limit=abc&offset=xyz",
			expected: Params{Limit: Unlimited},
		},
		{
			name:     "negative offset ignored",
			query:    "offset=-10",
			expected: Params{Limit: Unlimited},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Parse(values, tt.opts))
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	token := EncodeCursor(40)
	off, ok := DecodeCursor(token)
	require.True(t, ok)
	assert.Equal(t, 40, off)
}

func TestDecodeCursor_Rejects(t *testing.T) {
	for _, raw := range []string{"", "not-base64!!", "bzotNQ", EncodeCursor(0) + "x"} {
		_, ok := DecodeCursor(raw)
		assert.False(t, ok, "cursor %q must not decode", raw)
	}
}

func TestParse_CursorOverridesOffset(t *testing.T) {
	values := url.Values{}
	values.Set("offset", "5")
	values.Set("cursor", EncodeCursor(50))
	p := Parse(values, Options{})
	assert.Equal(t, 50, p.Offset)

	values.Set("cursor", "garbage")
	p = Parse(values, Options{})
	assert.Equal(t, 5, p.Offset, "invalid cursor falls back to offset")
}

func TestNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 20}

	cursor, ok := p.Next(10)
	require.True(t, ok)
	off, _ := DecodeCursor(cursor)
	assert.Equal(t, 30, off)

	_, ok = p.Next(7)
	assert.False(t, ok, "short page means no continuation")

	_, ok = Params{Limit: Unlimited}.Next(100)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5}

	assert.Equal(t, []int{2, 3}, Slice(Params{Limit: 2, Offset: 2}, items))
	assert.Equal(t, []int{4, 5}, Slice(Params{Limit: 10, Offset: 4}, items))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, Slice(Params{Limit: Unlimited}, items))
	assert.Empty(t, Slice(Params{Limit: 5, Offset: 100}, items))
	assert.Empty(t, Slice(Params{Limit: 0}, items))
}
