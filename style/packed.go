package style

import "github.com/zeebo/xxh3"

// Packed is the 128-bit, padding-free encoding of a [Style] used for both
// hashing and equality inside a [Set]. Its layout is fixed by spec:
//
//	byte 0      : tag byte -- bits[1:0]=fg tag, [3:2]=bg tag, [5:4]=underline tag, [7:6]=0
//	bytes 1..3  : fg color payload   (none -> 0,0,0 | palette -> idx,0,0 | rgb -> r,g,b)
//	bytes 4..6  : bg color payload
//	bytes 7..9  : underline color payload
//	bytes 10..11: flags word -- bits[7:0]=Flags, bits[10:8]=UnderlineStyle, bits[15:11]=0
//	bytes 12..15: explicit zero padding
//
// Returning a fixed-size Go array (rather than a struct reinterpreted via
// unsafe) gives the "exactly 128 bits, no padding" invariant for free: the
// compiler enforces `[16]byte` is 16 bytes on every platform, so there is no
// equivalent of the C/Zig "verify struct has no padding" build-time check to
// write here. Each color-payload arm is forced to occupy the same 3 bytes by
// construction, and every unused arm is explicitly zeroed rather than left
// as whatever bits happened to be in the union.
type Packed [16]byte

func packColor(c Color) (tag byte, payload [3]byte) {
	switch c.Tag {
	case ColorPalette:
		return byte(ColorPalette), [3]byte{c.Palette, 0, 0}
	case ColorRGB:
		return byte(ColorRGB), [3]byte{c.R, c.G, c.B}
	default:
		return byte(ColorNone), [3]byte{0, 0, 0}
	}
}

// Pack computes the canonical packed representation of s.
func Pack(s Style) Packed {
	var p Packed

	fgTag, fgPayload := packColor(s.Fg)
	bgTag, bgPayload := packColor(s.Bg)
	ulTag, ulPayload := packColor(s.Underline)

	p[0] = (fgTag & 0x3) | ((bgTag & 0x3) << 2) | ((ulTag & 0x3) << 4)
	copy(p[1:4], fgPayload[:])
	copy(p[4:7], bgPayload[:])
	copy(p[7:10], ulPayload[:])

	flagsWord := uint16(s.Flags&0xFF) | (uint16(s.UnderlineStyle&0x7) << 8)
	p[10] = byte(flagsWord)
	p[11] = byte(flagsWord >> 8)

	// p[12:16] left as explicit zero padding.
	return p
}

// Unpack decodes a [Packed] value back into a [Style]. Add/Get in [Set]
// always round-trip through Pack/Unpack so a Style read back from the set
// is byte-for-byte the one that was written in.
func Unpack(p Packed) Style {
	unpackColor := func(tag byte, payload []byte) Color {
		switch ColorTag(tag & 0x3) {
		case ColorPalette:
			return Idx(payload[0])
		case ColorRGB:
			return RGB(payload[0], payload[1], payload[2])
		default:
			return None
		}
	}

	s := Style{
		Fg:        unpackColor(p[0], p[1:4]),
		Bg:        unpackColor(p[0]>>2, p[4:7]),
		Underline: unpackColor(p[0]>>4, p[7:10]),
	}

	flagsWord := uint16(p[10]) | uint16(p[11])<<8
	s.Flags = Flags(flagsWord & 0xFF)
	s.UnderlineStyle = Underline((flagsWord >> 8) & 0x7)
	return s
}

// Hash returns the 64-bit XXH3 hash of the style's packed representation.
// Equal styles always hash equal; the converse need not hold, which is why
// [Set] still verifies equality on a hash match.
func Hash(s Style) uint64 {
	p := Pack(s)
	return xxh3.Hash(p[:])
}
