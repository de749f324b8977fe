package astiavstream

import (
	"context"
	"fmt"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astistream/pkg/astistream"
	"golang.org/x/sync/errgroup"
)

// StreamDescription is a snapshot of a stream's metadata with timestamps converted to durations
type StreamDescription struct {
	AvgFrameRate       astiav.Rational
	CodecID            astiav.CodecID
	Discard            astistream.Discard
	DisplayAspectRatio astistream.DisplayAspectRatio
	Disposition        astistream.Disposition
	Duration           time.Duration
	ID                 int
	Index              int
	MediaType          astiav.MediaType
	Metadata           map[string]string
	NbFrames           int64
	RFrameRate         astiav.Rational
	Rotation           float64
	SideDataTypes      []astiav.PacketSideDataType
	StartTime          time.Duration
	TimeBase           astiav.Rational
}

func NewStreamDescription(s astistream.Stream) StreamDescription {
	cp := s.CodecParameters()
	d := StreamDescription{
		AvgFrameRate: s.AvgFrameRate(),
		CodecID:      cp.CodecID(),
		Discard:      s.Discard(),
		Disposition:  s.Disposition(),
		ID:           s.ID(),
		Index:        s.Index(),
		MediaType:    cp.MediaType(),
		Metadata:     s.Metadata().Map(),
		NbFrames:     s.NbFrames(),
		RFrameRate:   s.RFrameRate(),
		Rotation:     s.Rotation(),
		TimeBase:     s.TimeBase(),
	}
	d.Duration, _ = TimestampToDuration(s.Duration(), d.TimeBase)
	d.StartTime, _ = TimestampToDuration(s.StartTime(), d.TimeBase)
	if d.MediaType == astiav.MediaTypeVideo {
		d.DisplayAspectRatio = s.DisplayAspectRatio()
	}
	for sd := range s.SideData().All() {
		d.SideDataTypes = append(d.SideDataTypes, sd.Type())
	}
	return d
}

func (d StreamDescription) String() string {
	s := fmt.Sprintf("#%d (id %d): %s %s, time base %s", d.Index, d.ID, d.MediaType, d.CodecID, d.TimeBase)
	if d.MediaType == astiav.MediaTypeVideo {
		s += fmt.Sprintf(", %dx%d [DAR %s], %s fps", d.DisplayAspectRatio.Width, d.DisplayAspectRatio.Height, d.DisplayAspectRatio, d.AvgFrameRate)
	}
	if d.Duration > 0 {
		s += fmt.Sprintf(", duration %s", d.Duration)
	}
	if d.NbFrames > 0 {
		s += fmt.Sprintf(", %d frames", d.NbFrames)
	}
	if v := d.Disposition.String(); v != "" {
		s += " (" + v + ")"
	}
	if d.Rotation != 0 {
		s += fmt.Sprintf(", rotation %.3f", d.Rotation)
	}
	return s
}

// Describe describes every stream concurrently. The stream table must not be updated
// meanwhile.
func (d *Demuxer) Describe(ctx context.Context) ([]StreamDescription, error) {
	// Get streams
	ss := d.Streams()

	// Loop through streams
	ds := make([]StreamDescription, len(ss))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range ss {
		g.Go(func() error {
			// Context error
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("astiavstream: context error: %w", err)
			}

			// Describe
			ds[i] = NewStreamDescription(s)
			return nil
		})
	}

	// Wait
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("astiavstream: describing streams failed: %w", err)
	}
	return ds, nil
}
