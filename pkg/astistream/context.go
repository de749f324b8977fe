package astistream

import (
	"fmt"
	"math"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
)

// Value of unset timestamps and durations
const NoPTSValue = int64(math.MinInt64)

// StreamSource is a stream table views read from. Implementations must return their own
// descriptors, not copies, so that views observe updates made by the table's owner.
type StreamSource interface {
	NbStreams() int
	Stream(i int) StreamDescriptor
}

// StreamDescriptor gives read access to one entry of a stream table
type StreamDescriptor interface {
	AvgFrameRate() astiav.Rational
	CodecParameters() *astiav.CodecParameters
	Discard() int
	Disposition() int
	Duration() int64
	ID() int
	Index() int
	Metadata() *astiav.Dictionary
	NbFrames() int64
	RFrameRate() astiav.Rational
	SampleAspectRatio() astiav.Rational
	SideData() []SideDataItem
	StartTime() int64
	TimeBase() astiav.Rational
}

// Context is the owner side of a stream table. Views created from it are read-only borrows.
//
// A context created with NewContext owns an in-memory table filled with NewStream. A context
// created with NewSourceContext reads a table owned by someone else, e.g. libavformat.
//
// Context doesn't lock: callers must not mutate the table while views are being read from
// other goroutines.
type Context struct {
	c  *astikit.Closer
	ds []*Descriptor
	s  StreamSource
}

// Descriptor is the writer side of an in-memory stream table slot
type Descriptor struct {
	AvgFrameRate      astiav.Rational
	CodecParameters   *astiav.CodecParameters
	Discard           int
	Disposition       int
	Duration          int64
	ID                int
	Index             int
	Metadata          *astiav.Dictionary
	NbFrames          int64
	RFrameRate        astiav.Rational
	SampleAspectRatio astiav.Rational
	SideData          []SideDataItem
	StartTime         int64
	TimeBase          astiav.Rational
}

type SideDataItem struct {
	Data []byte
	Type astiav.PacketSideDataType
}

func NewContext() *Context {
	c := &Context{c: astikit.NewCloser()}
	c.s = tableSource{c: c}
	return c
}

// NewSourceContext creates a context reading s when views are accessed. s keeps ownership of
// its descriptors and NewStream must not be used.
func NewSourceContext(s StreamSource) *Context {
	return &Context{
		c: astikit.NewCloser(),
		s: s,
	}
}

// NewStream appends a descriptor to the in-memory stream table. Its codec parameters and
// metadata are freed when the context is closed.
func (c *Context) NewStream() *Descriptor {
	// Create descriptor
	d := &Descriptor{
		CodecParameters:   astiav.AllocCodecParameters(),
		Duration:          NoPTSValue,
		Index:             len(c.ds),
		Metadata:          astiav.NewDictionary(),
		SampleAspectRatio: astiav.NewRational(0, 1),
		StartTime:         NoPTSValue,
		TimeBase:          astiav.NewRational(1, 90000),
	}

	// Make sure foreign objects are freed properly
	c.c.Add(d.CodecParameters.Free)
	c.c.Add(d.Metadata.Free)

	// Append
	c.ds = append(c.ds, d)
	return d
}

// Descriptor returns the writable descriptor stored at index i of the in-memory stream table
func (c *Context) Descriptor(i int) *Descriptor {
	return c.ds[i]
}

func (c *Context) NbStreams() int {
	if c.s == nil {
		return 0
	}
	return c.s.NbStreams()
}

// Stream returns a view on slot i. The index is not validated: an invalid index panics on
// first access.
func (c *Context) Stream(i int) Stream {
	return Stream{c: c, i: i}
}

func (c *Context) Streams() (ss []Stream) {
	for i := range c.NbStreams() {
		ss = append(ss, c.Stream(i))
	}
	return
}

// Closer is the destructor token propagated to borrowed sub-objects
func (c *Context) Closer() *astikit.Closer {
	return c.c
}

// Close frees foreign objects and drops the stream table. Views must not be used afterwards.
func (c *Context) Close() error {
	c.ds = nil
	c.s = nil
	if err := c.c.Close(); err != nil {
		return fmt.Errorf("astistream: closing failed: %w", err)
	}
	return nil
}

type tableSource struct {
	c *Context
}

func (s tableSource) NbStreams() int {
	return len(s.c.ds)
}

func (s tableSource) Stream(i int) StreamDescriptor {
	return tableDescriptor{d: s.c.ds[i]}
}

type tableDescriptor struct {
	d *Descriptor
}

func (d tableDescriptor) AvgFrameRate() astiav.Rational {
	return d.d.AvgFrameRate
}

func (d tableDescriptor) CodecParameters() *astiav.CodecParameters {
	return d.d.CodecParameters
}

func (d tableDescriptor) Discard() int {
	return d.d.Discard
}

func (d tableDescriptor) Disposition() int {
	return d.d.Disposition
}

func (d tableDescriptor) Duration() int64 {
	return d.d.Duration
}

func (d tableDescriptor) ID() int {
	return d.d.ID
}

func (d tableDescriptor) Index() int {
	return d.d.Index
}

func (d tableDescriptor) Metadata() *astiav.Dictionary {
	return d.d.Metadata
}

func (d tableDescriptor) NbFrames() int64 {
	return d.d.NbFrames
}

func (d tableDescriptor) RFrameRate() astiav.Rational {
	return d.d.RFrameRate
}

func (d tableDescriptor) SampleAspectRatio() astiav.Rational {
	return d.d.SampleAspectRatio
}

func (d tableDescriptor) SideData() []SideDataItem {
	return d.d.SideData
}

func (d tableDescriptor) StartTime() int64 {
	return d.d.StartTime
}

func (d tableDescriptor) TimeBase() astiav.Rational {
	return d.d.TimeBase
}
