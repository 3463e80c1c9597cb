package island

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise channels. Distinct channels are decorrelated so the x and y shape
// displacements do not mirror each other.
const (
	ChannelShapeX = iota
	ChannelShapeY
	ChannelTerrain
	numChannels
)

// Field samples coherent 2D noise in [0, 1]. It is pure and deterministic
// for a given seed: the same (x, y, channel) always yields the same value,
// and nearby coordinates yield nearby values. The domain is unbounded.
type Field struct {
	channels [numChannels]opensimplex.Noise
}

// NewField builds a field with one independent noise source per channel.
func NewField(seed int64) *Field {
	f := &Field{}
	for i := range f.channels {
		f.channels[i] = opensimplex.NewNormalized(seed + int64(i))
	}
	return f
}

// Sample evaluates the given channel at (x, y). The result is in [0, 1].
func (f *Field) Sample(x, y float64, channel int) float64 {
	return f.channels[channel].Eval2(x, y)
}
