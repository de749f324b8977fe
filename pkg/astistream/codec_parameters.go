package astistream

import (
	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
)

// CodecParameters wraps codec parameters that may be owned by a Context
type CodecParameters struct {
	*astiav.CodecParameters
	owner *astikit.Closer
}

func newCodecParameters(cp *astiav.CodecParameters, owner *astikit.Closer) *CodecParameters {
	return &CodecParameters{
		CodecParameters: cp,
		owner:           owner,
	}
}

// AllocCodecParameters allocates codec parameters that are not owned by any context
func AllocCodecParameters() *CodecParameters {
	return newCodecParameters(astiav.AllocCodecParameters(), nil)
}

func (cp *CodecParameters) Owned() bool {
	return cp.owner != nil
}

// Free is a no-op when codec parameters are owned: the owner frees them
func (cp *CodecParameters) Free() {
	if cp.Owned() {
		return
	}
	cp.CodecParameters.Free()
}
