package colorspace

import "strings"

// ChannelOrder selects which input channel feeds each output channel.
// The name reads as the source of the output R, G and B in turn.
type ChannelOrder uint8

const (
	OrderRGB ChannelOrder = iota
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

var channelOrderNames = [...]string{
	OrderRGB: "RGB",
	OrderRBG: "RBG",
	OrderGRB: "GRB",
	OrderGBR: "GBR",
	OrderBRG: "BRG",
	OrderBGR: "BGR",
}

// String returns the three-letter token used in configuration files.
func (o ChannelOrder) String() string {
	if int(o) < len(channelOrderNames) {
		return channelOrderNames[o]
	}
	return "RGB"
}

// ParseChannelOrder matches s case-insensitively against the six tokens.
// Anything else, including the empty string, yields OrderRGB.
func ParseChannelOrder(s string) ChannelOrder {
	s = strings.TrimSpace(s)
	for i, name := range channelOrderNames {
		if strings.EqualFold(s, name) {
			return ChannelOrder(i)
		}
	}
	return OrderRGB
}

// Permute reorders one LED triplet.
func (o ChannelOrder) Permute(r, g, b uint8) (uint8, uint8, uint8) {
	switch o {
	case OrderRBG:
		return r, b, g
	case OrderGRB:
		return g, r, b
	case OrderGBR:
		return g, b, r
	case OrderBRG:
		return b, r, g
	case OrderBGR:
		return b, g, r
	default:
		return r, g, b
	}
}
