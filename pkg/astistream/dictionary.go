package astistream

import "github.com/asticode/go-astiav"

// Dictionary is a read-only view on a stream's metadata. A nil dictionary behaves as an
// empty one.
type Dictionary struct {
	d *astiav.Dictionary
}

func newDictionary(d *astiav.Dictionary) *Dictionary {
	return &Dictionary{d: d}
}

func (d *Dictionary) Get(key string) (string, bool) {
	if d.d == nil {
		return "", false
	}
	e := d.d.Get(key, nil, astiav.NewDictionaryFlags())
	if e == nil {
		return "", false
	}
	return e.Value(), true
}

func (d *Dictionary) each(fn func(e *astiav.DictionaryEntry)) {
	if d.d == nil {
		return
	}
	flags := astiav.NewDictionaryFlags(astiav.DictionaryFlagIgnoreSuffix)
	for e := d.d.Get("", nil, flags); e != nil; e = d.d.Get("", e, flags) {
		fn(e)
	}
}

func (d *Dictionary) Len() (n int) {
	d.each(func(*astiav.DictionaryEntry) { n++ })
	return
}

func (d *Dictionary) Map() map[string]string {
	m := make(map[string]string)
	d.each(func(e *astiav.DictionaryEntry) { m[e.Key()] = e.Value() })
	return m
}
