package colorspace

// HSV range limits.
const (
	HueDegrees    = 360
	MaxSaturation = 255
	MaxValue      = 255
)

// HSV is a colour in integer hue/saturation/value form.
type HSV struct {
	H int // 0-359
	S int // 0-255
	V int // 0-255
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// RGBToHSV converts an 8-bit RGB triplet to HSV.
// Black yields (0, 0, 0) and grays yield hue 0 with saturation 0.
func RGBToHSV(r, g, b uint8) (h, s, v int) {
	ri, gi, bi := int(r), int(g), int(b)
	maxVal := max3(ri, gi, bi)
	minVal := min3(ri, gi, bi)
	delta := maxVal - minVal

	v = maxVal
	if maxVal == 0 {
		return 0, 0, 0
	}

	s = delta * 255 / maxVal
	if delta == 0 {
		return 0, s, v
	}

	switch maxVal {
	case ri:
		h = 60 * (gi - bi) / delta
	case gi:
		h = 120 + 60*(bi-ri)/delta
	default:
		h = 240 + 60*(ri-gi)/delta
	}

	if h < 0 {
		h += HueDegrees
	}
	return h, s, v
}

// HSVToRGB converts HSV back to an 8-bit RGB triplet.
// Hue is taken modulo 360; s and v are expected in 0-255.
func HSVToRGB(h, s, v int) (r, g, b uint8) {
	if s == 0 {
		c := uint8(v)
		return c, c, c
	}

	h %= HueDegrees
	if h < 0 {
		h += HueDegrees
	}
	region := h / 60
	remainder := h % 60

	p := uint8(v * (255 - s) / 255)
	q := uint8(v * (255 - s*remainder/60) / 255)
	t := uint8(v * (255 - s*(60-remainder)/60) / 255)
	vv := uint8(v)

	switch region {
	case 0:
		return vv, t, p
	case 1:
		return q, vv, p
	case 2:
		return p, vv, t
	case 3:
		return p, q, vv
	case 4:
		return t, p, vv
	default:
		return vv, p, q
	}
}

// ToHSV converts an RGB triplet to an HSV value.
func ToHSV(r, g, b uint8) HSV {
	h, s, v := RGBToHSV(r, g, b)
	return HSV{H: h, S: s, V: v}
}

// WrapHue normalizes any integer number of degrees into [0, 359].
func WrapHue(deg int) int {
	return ((deg % HueDegrees) + HueDegrees) % HueDegrees
}
