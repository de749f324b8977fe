package astistream

// Discard describes how aggressively frames of a stream may be dropped.
// Values follow libavcodec's AVDiscard and are ordered: a higher value discards more.
type Discard int

const (
	DiscardNone     = Discard(-16)
	DiscardDefault  = Discard(0)
	DiscardNonRef   = Discard(8)
	DiscardBidir    = Discard(16)
	DiscardNonIntra = Discard(24)
	DiscardNonKey   = Discard(32)
	DiscardAll      = Discard(48)
)

var discards = []Discard{
	DiscardNone,
	DiscardDefault,
	DiscardNonRef,
	DiscardBidir,
	DiscardNonIntra,
	DiscardNonKey,
	DiscardAll,
}

// NewDiscard decodes a raw discard value. Values between two policies resolve to the
// lower one and values below DiscardNone resolve to DiscardNone.
func NewDiscard(raw int) Discard {
	d := DiscardNone
	for _, v := range discards {
		if Discard(raw) < v {
			break
		}
		d = v
	}
	return d
}

func (d Discard) String() string {
	switch d {
	case DiscardNone:
		return "none"
	case DiscardDefault:
		return "default"
	case DiscardNonRef:
		return "nonref"
	case DiscardBidir:
		return "bidir"
	case DiscardNonIntra:
		return "nonintra"
	case DiscardNonKey:
		return "nonkey"
	case DiscardAll:
		return "all"
	default:
		return "unknown"
	}
}
