package usecase

import (
	"strconv"
	"strings"
)

// ByteRange is an inclusive span of an object.
type ByteRange struct {
	Start int64
	End   int64
}

func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// Header renders the span as a Range request value.
func (r ByteRange) Header() string {
	return "bytes=" + strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10)
}

// ParseRange parses a single "bytes=<start>-[<end>]" range against an object
// of size bytes. ok is false when the header is absent or does not follow
// that form; the caller then serves the whole object. unsatisfiable is true
// when start lies at or past the end of the object.
func ParseRange(header string, size int64) (r ByteRange, ok bool, unsatisfiable bool) {
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, "bytes=") {
		return ByteRange{}, false, false
	}
	rangeSpec := strings.TrimSpace(strings.TrimPrefix(header, "bytes="))
	if strings.Contains(rangeSpec, ",") {
		return ByteRange{}, false, false
	}
	dash := strings.IndexByte(rangeSpec, '-')
	if dash <= 0 {
		return ByteRange{}, false, false
	}

	start, err := strconv.ParseInt(strings.TrimSpace(rangeSpec[:dash]), 10, 64)
	if err != nil || start < 0 {
		return ByteRange{}, false, false
	}
	end := size - 1
	if rawEnd := strings.TrimSpace(rangeSpec[dash+1:]); rawEnd != "" {
		parsed, err := strconv.ParseInt(rawEnd, 10, 64)
		if err != nil || parsed < start {
			return ByteRange{}, false, false
		}
		if parsed < end {
			end = parsed
		}
	}
	if start >= size {
		return ByteRange{}, true, true
	}
	return ByteRange{Start: start, End: end}, true, false
}
