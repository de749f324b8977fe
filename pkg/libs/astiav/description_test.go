package astiavstream

import (
	"context"
	"testing"
	"time"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astistream/pkg/astistream"
	"github.com/stretchr/testify/require"
)

func TestStreamDescription(t *testing.T) {
	c := astistream.NewContext()
	defer c.Close() //nolint: errcheck

	d := c.NewStream()
	d.AvgFrameRate = astiav.NewRational(25, 1)
	d.CodecParameters.SetCodecID(astiav.CodecIDMjpeg)
	d.CodecParameters.SetMediaType(astiav.MediaTypeVideo)
	d.CodecParameters.SetWidth(1920)
	d.CodecParameters.SetHeight(1080)
	d.Disposition = int(astistream.DispositionDefault)
	d.Duration = 9000
	d.ID = 3
	d.NbFrames = 2
	d.SampleAspectRatio = astiav.NewRational(1, 1)
	d.SideData = []astistream.SideDataItem{{
		Data: astiav.NewDisplayMatrixFromRotation(90).Bytes(),
		Type: astiav.PacketSideDataTypeDisplaymatrix,
	}}
	d.StartTime = 0
	d.TimeBase = astiav.NewRational(1, 90000)
	require.NoError(t, d.Metadata.Set("language", "eng", astiav.NewDictionaryFlags()))

	sd := NewStreamDescription(c.Stream(0))
	require.Equal(t, StreamDescription{
		AvgFrameRate: astiav.NewRational(25, 1),
		CodecID:      astiav.CodecIDMjpeg,
		Discard:      astistream.DiscardDefault,
		DisplayAspectRatio: astistream.DisplayAspectRatio{
			Height: 1080,
			Ratio:  astiav.NewRational(16, 9),
			Width:  1920,
		},
		Disposition:   astistream.DispositionDefault,
		Duration:      100 * time.Millisecond,
		ID:            3,
		Index:         0,
		MediaType:     astiav.MediaTypeVideo,
		Metadata:      map[string]string{"language": "eng"},
		NbFrames:      2,
		RFrameRate:    c.Stream(0).RFrameRate(),
		Rotation:      90,
		SideDataTypes: []astiav.PacketSideDataType{astiav.PacketSideDataTypeDisplaymatrix},
		StartTime:     0,
		TimeBase:      astiav.NewRational(1, 90000),
	}, sd)
	require.Contains(t, sd.String(), "#0 (id 3)")
	require.Contains(t, sd.String(), "1920x1080 [DAR 16:9]")
	require.Contains(t, sd.String(), "duration 100ms")
	require.Contains(t, sd.String(), "(default)")
}

func TestDemuxerDescribe(t *testing.T) {
	r := newMockedDemuxerReader()
	defer r.close()
	fc := astiav.AllocFormatContext()
	defer fc.Free()
	for i := range 3 {
		s := fc.NewStream(nil)
		s.SetID(i + 10)
		s.SetIndex(i)
		r.streams = append(r.streams, s)
	}

	d := NewDemuxer(DemuxerOptions{})
	defer d.Close() //nolint: errcheck
	require.NoError(t, d.Open(context.Background(), DemuxerOpenOptions{URL: "url"}))

	ds, err := d.Describe(context.Background())
	require.NoError(t, err)
	require.Len(t, ds, 3)
	for i, sd := range ds {
		require.Equal(t, i, sd.Index)
		require.Equal(t, i+10, sd.ID)
		require.Equal(t, time.Duration(0), sd.Duration)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Describe(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
