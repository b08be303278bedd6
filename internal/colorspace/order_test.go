package colorspace

import "testing"

func TestParseChannelOrder(t *testing.T) {
	tests := []struct {
		in   string
		want ChannelOrder
	}{
		{"RGB", OrderRGB},
		{"rbg", OrderRBG},
		{"Grb", OrderGRB},
		{"GBR", OrderGBR},
		{"brg", OrderBRG},
		{"BGR", OrderBGR},
		{" bgr ", OrderBGR},
		{"", OrderRGB},
		{"RGBW", OrderRGB},
		{"xyz", OrderRGB},
		{"RRG", OrderRGB},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseChannelOrder(tt.in); got != tt.want {
				t.Errorf("ParseChannelOrder(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChannelOrderPermute(t *testing.T) {
	const r, g, b = 10, 20, 30

	tests := []struct {
		order   ChannelOrder
		wantOut [3]uint8
	}{
		{OrderRGB, [3]uint8{r, g, b}},
		{OrderRBG, [3]uint8{r, b, g}},
		{OrderGRB, [3]uint8{g, r, b}},
		{OrderGBR, [3]uint8{g, b, r}},
		{OrderBRG, [3]uint8{b, r, g}},
		{OrderBGR, [3]uint8{b, g, r}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			o1, o2, o3 := tt.order.Permute(r, g, b)
			if got := [3]uint8{o1, o2, o3}; got != tt.wantOut {
				t.Errorf("%v.Permute(%d,%d,%d) = %v, want %v", tt.order, r, g, b, got, tt.wantOut)
			}
		})
	}
}

func TestChannelOrderStringRoundTrip(t *testing.T) {
	for o := OrderRGB; o <= OrderBGR; o++ {
		if got := ParseChannelOrder(o.String()); got != o {
			t.Errorf("ParseChannelOrder(%q) = %v, want %v", o.String(), got, o)
		}
	}
}
