package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		header        string
		start, end    int64
		ok            bool
		unsatisfiable bool
	}{
		{header: "bytes=200-299", start: 200, end: 299, ok: true},
		{header: "bytes=900-", start: 900, end: 999, ok: true},
		{header: "bytes=0-", start: 0, end: 999, ok: true},
		{header: "bytes=990-5000", start: 990, end: 999, ok: true},
		{header: "bytes=999-999", start: 999, end: 999, ok: true},
		{header: "bytes=1000-", ok: true, unsatisfiable: true},
		{header: "bytes=1500-1600", ok: true, unsatisfiable: true},
		{header: ""},
		{header: "bytes=-500"},
		{header: "bytes=abc-"},
		{header: "bytes=300-200"},
		{header: "bytes=0-1,5-9"},
		{header: "items=0-10"},
		{header: "bytes="},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r, ok, unsatisfiable := ParseRange(tt.header, 1000)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.unsatisfiable, unsatisfiable)
			if ok && !unsatisfiable {
				assert.Equal(t, tt.start, r.Start)
				assert.Equal(t, tt.end, r.End)
			}
		})
	}
}

func TestByteRange(t *testing.T) {
	r := ByteRange{Start: 200, End: 299}
	assert.Equal(t, int64(100), r.Length())
	assert.Equal(t, "bytes=200-299", r.Header())
}
