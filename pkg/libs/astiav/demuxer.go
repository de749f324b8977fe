package astiavstream

import (
	"context"
	"fmt"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
	"github.com/asticode/go-astistream/pkg/astistream"
)

// Demuxer opens inputs with libavformat. Its context reads libavformat's stream table directly:
// views observe updates made while probing and must not be read concurrently with Open.
type Demuxer struct {
	c             *astikit.Closer
	ctx           context.Context
	ii            astiav.IOInterrupter
	l             astikit.CompleteLogger
	r             demuxerReader
	sc            *astistream.Context
	sideDataTypes []astiav.PacketSideDataType
}

type DemuxerOptions struct {
	Logger astikit.StdLogger
	// Side data types of codec parameters exposed by views.
	// Defaults to the display matrix
	SideDataTypes []astiav.PacketSideDataType
}

func NewDemuxer(o DemuxerOptions) (d *Demuxer) {
	// Create demuxer
	d = &Demuxer{
		c:             astikit.NewCloser(),
		ctx:           context.Background(),
		l:             astikit.AdaptStdLogger(o.Logger),
		sideDataTypes: o.SideDataTypes,
	}
	d.sc = astistream.NewSourceContext(demuxerSource{d: d})

	// Default side data types
	if len(d.sideDataTypes) == 0 {
		d.sideDataTypes = []astiav.PacketSideDataType{astiav.PacketSideDataTypeDisplaymatrix}
	}

	// Make sure views can't be used once closed
	d.c.AddWithError(d.sc.Close)

	// Create new reader
	r := newDemuxerReader()
	d.c.Add(r.Free)
	d.r = r

	// Set interrupt callback
	d.ii = d.r.SetInterruptCallback()
	return
}

type DemuxerOpenOptions struct {
	Dictionary DictionaryOptions
	Format     *astiav.InputFormat
	URL        string
}

func (d *Demuxer) Open(ctx context.Context, o DemuxerOpenOptions) (err error) {
	// Dictionary
	var dict *dictionary
	if dict, err = o.Dictionary.dictionary(); err != nil {
		err = fmt.Errorf("astiavstream: creating dictionary failed: %w", err)
		return
	}
	defer dict.close()

	// Make sure to resume interrupt callback
	d.ii.Resume()

	// Process context
	if ctx != nil {
		// Store context
		d.ctx = ctx

		// Create child context
		childCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Watch child context in a goroutine
		go func() {
			// Wait for child context to be done
			<-childCtx.Done()

			// Context error
			if ctx.Err() != nil {
				// Interrupt
				d.ii.Interrupt()
			}
		}()
	}

	// Store classer
	classers.set(d.r, d.ctx)
	d.c.Add(func() { classers.del(d.r) })

	// Open input
	if err = d.r.OpenInput(o.URL, o.Format, dict.Dictionary); err != nil {
		err = fmt.Errorf("astiavstream: opening input failed: %w", err)
		return
	}
	d.c.Add(d.r.CloseInput)

	// Context error
	if ctx != nil && ctx.Err() != nil {
		err = fmt.Errorf("astiavstream: context error: %w", ctx.Err())
		return
	}

	// Find stream information
	if err = d.r.FindStreamInfo(nil); err != nil {
		err = fmt.Errorf("astiavstream: finding stream info failed: %w", err)
		return
	}

	// Context error
	if ctx != nil && ctx.Err() != nil {
		err = fmt.Errorf("astiavstream: context error: %w", ctx.Err())
		return
	}

	// Log
	d.l.DebugC(d.ctx, fmt.Sprintf("astiavstream: %d stream(s) found", d.sc.NbStreams()))
	return
}

func (d *Demuxer) Context() *astistream.Context {
	return d.sc
}

// Streams returns views on the stream table. They must not be used once the demuxer is closed.
func (d *Demuxer) Streams() []astistream.Stream {
	return d.sc.Streams()
}

func (d *Demuxer) Close() error {
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("astiavstream: closing failed: %w", err)
	}
	return nil
}

type demuxerReader interface {
	astiav.Classer
	CloseInput()
	FindStreamInfo(d *astiav.Dictionary) error
	Free()
	OpenInput(url string, fmt *astiav.InputFormat, d *astiav.Dictionary) error
	SetInterruptCallback() astiav.IOInterrupter
	Streams() []*astiav.Stream
}

var newDemuxerReader = func() demuxerReader {
	return astiav.AllocFormatContext()
}

type demuxerSource struct {
	d *Demuxer
}

func (s demuxerSource) NbStreams() int {
	return len(s.d.r.Streams())
}

func (s demuxerSource) Stream(i int) astistream.StreamDescriptor {
	return streamDescriptor{
		s:             s.d.r.Streams()[i],
		sideDataTypes: s.d.sideDataTypes,
	}
}

// streamDescriptor reads an AVStream owned by libavformat
type streamDescriptor struct {
	s             *astiav.Stream
	sideDataTypes []astiav.PacketSideDataType
}

func (d streamDescriptor) AvgFrameRate() astiav.Rational {
	return d.s.AvgFrameRate()
}

func (d streamDescriptor) CodecParameters() *astiav.CodecParameters {
	return d.s.CodecParameters()
}

func (d streamDescriptor) Discard() int {
	return int(d.s.Discard())
}

func (d streamDescriptor) Disposition() int {
	return int(d.s.DispositionFlags())
}

func (d streamDescriptor) Duration() int64 {
	return d.s.Duration()
}

func (d streamDescriptor) ID() int {
	return d.s.ID()
}

func (d streamDescriptor) Index() int {
	return d.s.Index()
}

func (d streamDescriptor) Metadata() *astiav.Dictionary {
	return d.s.Metadata()
}

func (d streamDescriptor) NbFrames() int64 {
	return d.s.NbFrames()
}

func (d streamDescriptor) RFrameRate() astiav.Rational {
	return d.s.RFrameRate()
}

func (d streamDescriptor) SampleAspectRatio() astiav.Rational {
	return d.s.SampleAspectRatio()
}

// SideData returns the configured side data types present in the codec parameters, in the
// configured order
func (d streamDescriptor) SideData() (sds []astistream.SideDataItem) {
	for _, t := range d.sideDataTypes {
		if b := d.s.CodecParameters().SideData().Get(t); len(b) > 0 {
			sds = append(sds, astistream.SideDataItem{
				Data: b,
				Type: t,
			})
		}
	}
	return
}

func (d streamDescriptor) StartTime() int64 {
	return d.s.StartTime()
}

func (d streamDescriptor) TimeBase() astiav.Rational {
	return d.s.TimeBase()
}
