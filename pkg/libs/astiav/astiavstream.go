package astiavstream

import (
	"time"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astistream/pkg/astistream"
)

var (
	NanosecondRational = astiav.NewRational(1, 1e9)
)

// TimestampToDuration converts a timestamp expressed in time base units. Unset timestamps and
// invalid time bases are reported with ok set to false.
func TimestampToDuration(i int64, t astiav.Rational) (d time.Duration, ok bool) {
	if i == astistream.NoPTSValue || t.Num() <= 0 || t.Den() <= 0 {
		return
	}
	return time.Duration(astiav.RescaleQ(i, t, NanosecondRational)), true
}
