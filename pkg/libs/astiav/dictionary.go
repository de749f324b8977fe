package astiavstream

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// DictionaryOptions describes the options passed to libavformat when opening an input
type DictionaryOptions struct {
	Flags             astiav.DictionaryFlags
	KeyValueSeparator string
	PairsSeparator    string
	String            string
}

func newDictionaryOptions(pairsSeparator, format string, args ...interface{}) DictionaryOptions {
	return DictionaryOptions{
		KeyValueSeparator: "=",
		PairsSeparator:    pairsSeparator,
		String:            fmt.Sprintf(format, args...),
	}
}

// NewCommaDictionaryOptions parses "k1=v1,k2=v2"
func NewCommaDictionaryOptions(format string, args ...interface{}) DictionaryOptions {
	return newDictionaryOptions(",", format, args...)
}

// NewSemiColonDictionaryOptions parses "k1=v1;k2=v2"
func NewSemiColonDictionaryOptions(format string, args ...interface{}) DictionaryOptions {
	return newDictionaryOptions(";", format, args...)
}

// dictionary may wrap a nil dictionary, in which case libav uses its defaults
type dictionary struct {
	*astiav.Dictionary
}

func (d *dictionary) close() {
	if d.Dictionary != nil {
		d.Free()
	}
}

func (o DictionaryOptions) dictionary() (d *dictionary, err error) {
	// Create dictionary
	d = &dictionary{}

	// Nothing to parse
	if o.String == "" {
		return
	}

	// Parse string
	d.Dictionary = astiav.NewDictionary()
	if err = d.ParseString(o.String, o.KeyValueSeparator, o.PairsSeparator, o.Flags); err != nil {
		d.close()
		err = fmt.Errorf("astiavstream: parsing string failed: %w", err)
		return
	}
	return
}
