package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		last   string
		want   string
	}{
		{name: "first identifier starts after the floor", prefix: PrefixUser, last: "", want: "U-101"},
		{name: "increments the suffix", prefix: PrefixUser, last: "U-101", want: "U-102"},
		{name: "large values", prefix: PrefixOrder, last: "O-99999", want: "O-100000"},
		{name: "unparseable suffix falls back to floor", prefix: PrefixProduct, last: "P-abc", want: "P-101"},
		{name: "missing separator falls back to floor", prefix: PrefixProduct, last: "P101", want: "P-101"},
		{name: "foreign prefix falls back to floor", prefix: PrefixAddress, last: "U-500", want: "A-101"},
		{name: "negative suffix falls back to floor", prefix: PrefixAddress, last: "A--7", want: "A-101"},
		{name: "below floor is lifted to the floor", prefix: PrefixDesign, last: "D-7", want: "D-101"},
		{name: "surrounding whitespace is ignored", prefix: PrefixDesign, last: " D-120 ", want: "D-121"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.prefix, tt.last, DefaultFloor))
		})
	}
}

func TestNext_NeverReusesIdentifiers(t *testing.T) {
	seen := make(map[string]struct{})
	last := ""

	for range 500 {
		id := Next(PrefixOrder, last, DefaultFloor)
		_, dup := seen[id]
		assert.False(t, dup, "identifier %s allocated twice", id)
		seen[id] = struct{}{}
		last = id
	}

	assert.Len(t, seen, 500)
	assert.Equal(t, "O-600", last)
}

func TestParse(t *testing.T) {
	prefix, n, ok := Parse("U-123")
	assert.True(t, ok)
	assert.Equal(t, "U", prefix)
	assert.Equal(t, int64(123), n)

	_, _, ok = Parse("-123")
	assert.False(t, ok)

	_, _, ok = Parse("U-")
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "P-101", Format(PrefixProduct, 101))
}
