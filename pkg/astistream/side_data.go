package astistream

import (
	"iter"

	"github.com/asticode/go-astiav"
)

// SideData is a view on one side data entry of a stream. Its data is shared with the descriptor.
type SideData struct {
	i int
	s Stream
}

func (sd SideData) item() SideDataItem {
	return sd.s.descriptor().SideData()[sd.i]
}

func (sd SideData) Type() astiav.PacketSideDataType {
	return sd.item().Type
}

// Data must not be modified
func (sd SideData) Data() []byte {
	return sd.item().Data
}

func (sd SideData) Len() int {
	return len(sd.item().Data)
}

// SideDataIterator walks a stream's side data entries once, in order
type SideDataIterator struct {
	cursor int
	s      Stream
}

func newSideDataIterator(s Stream) *SideDataIterator {
	return &SideDataIterator{s: s}
}

func (it *SideDataIterator) count() int {
	return len(it.s.descriptor().SideData())
}

// Next returns the entry at the cursor and advances it. Once all entries have been returned,
// ok is false for every subsequent call.
func (it *SideDataIterator) Next() (sd SideData, ok bool) {
	if it.cursor >= it.count() {
		return
	}
	sd = SideData{
		i: it.cursor,
		s: it.s,
	}
	it.cursor++
	return sd, true
}

// Len returns the number of entries left
func (it *SideDataIterator) Len() int {
	return max(it.count()-it.cursor, 0)
}

// All drains the iterator
func (it *SideDataIterator) All() iter.Seq[SideData] {
	return func(yield func(SideData) bool) {
		for {
			sd, ok := it.Next()
			if !ok || !yield(sd) {
				return
			}
		}
	}
}
