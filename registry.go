// SPDX-License-Identifier: EPL-2.0

package mixbus

import (
	"github.com/ik5/mixbus/audio"
	"github.com/ik5/mixbus/formats/aiff"
	"github.com/ik5/mixbus/formats/mp3"
	"github.com/ik5/mixbus/formats/vorbis"
	"github.com/ik5/mixbus/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// the usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}
