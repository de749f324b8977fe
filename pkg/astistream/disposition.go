package astistream

import "strings"

// Disposition is a set of flags describing the role of a stream.
// Bit layout follows libavformat's AV_DISPOSITION_*.
type Disposition int

const (
	DispositionDefault         = Disposition(1 << 0)
	DispositionDub             = Disposition(1 << 1)
	DispositionOriginal        = Disposition(1 << 2)
	DispositionComment         = Disposition(1 << 3)
	DispositionLyrics          = Disposition(1 << 4)
	DispositionKaraoke         = Disposition(1 << 5)
	DispositionForced          = Disposition(1 << 6)
	DispositionHearingImpaired = Disposition(1 << 7)
	DispositionVisualImpaired  = Disposition(1 << 8)
	DispositionCleanEffects    = Disposition(1 << 9)
	DispositionAttachedPic     = Disposition(1 << 10)
	DispositionTimedThumbnails = Disposition(1 << 11)
	DispositionNonDiegetic     = Disposition(1 << 12)
	DispositionCaptions        = Disposition(1 << 16)
	DispositionDescriptions    = Disposition(1 << 17)
	DispositionMetadata        = Disposition(1 << 18)
	DispositionDependent       = Disposition(1 << 19)
	DispositionStillImage      = Disposition(1 << 20)
	DispositionMultilayer      = Disposition(1 << 21)
)

var dispositionNames = []struct {
	d Disposition
	n string
}{
	{d: DispositionDefault, n: "default"},
	{d: DispositionDub, n: "dub"},
	{d: DispositionOriginal, n: "original"},
	{d: DispositionComment, n: "comment"},
	{d: DispositionLyrics, n: "lyrics"},
	{d: DispositionKaraoke, n: "karaoke"},
	{d: DispositionForced, n: "forced"},
	{d: DispositionHearingImpaired, n: "hearing_impaired"},
	{d: DispositionVisualImpaired, n: "visual_impaired"},
	{d: DispositionCleanEffects, n: "clean_effects"},
	{d: DispositionAttachedPic, n: "attached_pic"},
	{d: DispositionTimedThumbnails, n: "timed_thumbnails"},
	{d: DispositionNonDiegetic, n: "non_diegetic"},
	{d: DispositionCaptions, n: "captions"},
	{d: DispositionDescriptions, n: "descriptions"},
	{d: DispositionMetadata, n: "metadata"},
	{d: DispositionDependent, n: "dependent"},
	{d: DispositionStillImage, n: "still_image"},
	{d: DispositionMultilayer, n: "multilayer"},
}

var dispositionAll = func() (d Disposition) {
	for _, v := range dispositionNames {
		d |= v.d
	}
	return
}()

// NewDisposition decodes a raw disposition mask. Unknown bits are dropped.
func NewDisposition(raw int) Disposition {
	return Disposition(raw) & dispositionAll
}

func (d Disposition) Has(f Disposition) bool {
	return f != 0 && d&f == f
}

func (d Disposition) Add(f Disposition) Disposition {
	return d | f
}

func (d Disposition) Del(f Disposition) Disposition {
	return d &^ f
}

// Flags returns the individual flags in bit order
func (d Disposition) Flags() (fs []Disposition) {
	for _, v := range dispositionNames {
		if d.Has(v.d) {
			fs = append(fs, v.d)
		}
	}
	return
}

func (d Disposition) String() string {
	var ss []string
	for _, v := range dispositionNames {
		if d.Has(v.d) {
			ss = append(ss, v.n)
		}
	}
	return strings.Join(ss, "+")
}
