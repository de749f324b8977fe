package astistream

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// Stream is a read-only view on one slot of a Context's stream table.
// Nothing is cached: every accessor reads the descriptor when called, therefore two calls
// may return different values if the owning context has updated the descriptor in between.
// A Stream must not be used once its context has been closed.
type Stream struct {
	c *Context
	i int
}

func (s Stream) descriptor() StreamDescriptor {
	return s.c.s.Stream(s.i)
}

func (s Stream) ID() int {
	return s.descriptor().ID()
}

func (s Stream) Index() int {
	return s.descriptor().Index()
}

func (s Stream) TimeBase() astiav.Rational {
	return s.descriptor().TimeBase()
}

// StartTime is expressed in time base units
func (s Stream) StartTime() int64 {
	return s.descriptor().StartTime()
}

// Duration is expressed in time base units
func (s Stream) Duration() int64 {
	return s.descriptor().Duration()
}

func (s Stream) NbFrames() int64 {
	return s.descriptor().NbFrames()
}

func (s Stream) Disposition() Disposition {
	return NewDisposition(s.descriptor().Disposition())
}

func (s Stream) Discard() Discard {
	return NewDiscard(s.descriptor().Discard())
}

// RFrameRate is the lowest frame rate with which all timestamps can be represented accurately
func (s Stream) RFrameRate() astiav.Rational {
	return s.descriptor().RFrameRate()
}

func (s Stream) AvgFrameRate() astiav.Rational {
	return s.descriptor().AvgFrameRate()
}

// FrameRate returns the average frame rate when known and the real base frame rate otherwise.
// Audio streams without any of them fall back to sample rate / frame size.
func (s Stream) FrameRate() astiav.Rational {
	if v := s.AvgFrameRate(); v.Num() > 0 && v.Den() > 0 {
		return v
	}
	r := s.RFrameRate()
	if r.Num() > 0 && r.Den() > 0 {
		return r
	}
	if cp := s.descriptor().CodecParameters(); cp.MediaType() == astiav.MediaTypeAudio {
		if fs, sr := cp.FrameSize(), cp.SampleRate(); fs > 0 && sr > 0 {
			return astiav.NewRational(sr, fs)
		}
	}
	return r
}

func (s Stream) SampleAspectRatio() astiav.Rational {
	return s.descriptor().SampleAspectRatio()
}

func (s Stream) CodecParameters() *CodecParameters {
	return newCodecParameters(s.descriptor().CodecParameters(), s.c.Closer())
}

func (s Stream) Metadata() *Dictionary {
	return newDictionary(s.descriptor().Metadata())
}

// SideData returns a new iterator starting at the first side data entry
func (s Stream) SideData() *SideDataIterator {
	return newSideDataIterator(s)
}

// SideDataOfType returns the first side data entry of type t
func (s Stream) SideDataOfType(t astiav.PacketSideDataType) (SideData, bool) {
	for sd := range s.SideData().All() {
		if sd.Type() == t {
			return sd, true
		}
	}
	return SideData{}, false
}

// Rotation returns the rotation in degrees stored in the display matrix side data, if any
func (s Stream) Rotation() float64 {
	sd, ok := s.SideDataOfType(astiav.PacketSideDataTypeDisplaymatrix)
	if !ok {
		return 0
	}
	dm, err := astiav.NewDisplayMatrixFromBytes(sd.Data())
	if err != nil {
		return 0
	}
	return dm.Rotation()
}

// DisplayAspectRatio computes the display aspect ratio from the stream's sample aspect ratio and
// its codec parameters' dimensions. Codec parameters must have been populated.
func (s Stream) DisplayAspectRatio() DisplayAspectRatio {
	cp := s.descriptor().CodecParameters()
	return NewDisplayAspectRatio(s.SampleAspectRatio(), cp.Width(), cp.Height())
}

// Equal reports whether both views resolve to the same descriptor, that is the same slot of the
// same context. Slots are never reordered.
func (s Stream) Equal(i Stream) bool {
	return s.c == i.c && s.i == i.i
}

func (s Stream) String() string {
	return fmt.Sprintf("stream #%d (id %d)", s.Index(), s.ID())
}
