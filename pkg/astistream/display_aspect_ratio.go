package astistream

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// Bound applied to both terms of a reduced display aspect ratio
const DisplayAspectRatioMax = 1024 * 1024

type DisplayAspectRatio struct {
	Height int
	Ratio  astiav.Rational
	Width  int
}

// NewDisplayAspectRatio multiplies the coded dimensions by the sample aspect ratio and reduces
// the result. A zero width or sample aspect ratio numerator produces 0/1, a zero height or sample
// aspect ratio denominator produces 1/0 and negative dimensions are passed through.
func NewDisplayAspectRatio(sampleAspectRatio astiav.Rational, width, height int) DisplayAspectRatio {
	r, _ := Reduce(int64(width)*int64(sampleAspectRatio.Num()), int64(height)*int64(sampleAspectRatio.Den()), DisplayAspectRatioMax)
	return DisplayAspectRatio{
		Height: height,
		Ratio:  r,
		Width:  width,
	}
}

func (r DisplayAspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.Ratio.Num(), r.Ratio.Den())
}
