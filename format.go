package num

import (
	"fmt"
)

// HexFlags controls hex output.
type HexFlags uint8

const (
	// HexPrefix emits a "0x" prefix, or "0X" together with HexUpper.
	HexPrefix HexFlags = 1 << iota

	// HexUpper emits upper-case digits.
	HexUpper
)

const (
	// MaxHexLen is the longest hex output of a U256: a prefix and 64 digits.
	// Negative I256 values from I256.PutHex need one more byte for the sign.
	MaxHexLen = 66

	// MaxDecimalLen is the number of digits in MaxU256.
	MaxDecimalLen = 78

	// MaxSignedDecimalLen is the length of MinI256 in decimal, sign included,
	// rounded up to hold any U256 plus a sign.
	MaxSignedDecimalLen = 79
)

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"

	// tenToThe19 is the largest power of ten that fits in a uint64.
	tenToThe19 = 10000000000000000000
)

// char is a code unit of the supported output encodings. ASCII output is
// identical in UTF-8 and UTF-16, one unit per character.
type char interface {
	byte | uint16
}

func hexDigitCount(u U256) int {
	n := (u.BitLen() + 3) / 4
	if n == 0 {
		return 1
	}
	return n
}

func writeHexDigits[T char](dst []T, u U256, flags HexFlags) {
	digits := lowerHexDigits
	if flags&HexUpper != 0 {
		digits = upperHexDigits
	}
	l := u.limbs()
	last := len(dst) - 1
	for j := 0; j <= last; j++ {
		nibble := (l[j/16] >> (4 * uint(j%16))) & 0xf
		dst[last-j] = T(digits[nibble])
	}
}

func putHex[T char](dst []T, u U256, digits int, flags HexFlags, neg bool) (n int, ok bool) {
	n = digits
	if flags&HexPrefix != 0 {
		n += 2
	}
	if neg {
		n++
	}
	if len(dst) < n {
		return 0, false
	}

	writeHexDigits(dst[n-digits:n], u, flags)
	i := 0
	if neg {
		dst[i] = '-'
		i++
	}
	if flags&HexPrefix != 0 {
		dst[i] = '0'
		if flags&HexUpper != 0 {
			dst[i+1] = 'X'
		} else {
			dst[i+1] = 'x'
		}
	}
	return n, true
}

// decimalDigits writes u into the tail of buf and returns the index of the
// first digit. u is divided by 10^19 at a time so each step is a single
// pass of 128/64 divisions; all but the last chunk are zero padded.
func decimalDigits(u U256, buf *[MaxDecimalLen]byte) (start int) {
	i := len(buf)
	for {
		var chunk uint64
		u, chunk = quorem256by64(u, tenToThe19)
		if u.IsZero() {
			for {
				i--
				buf[i] = byte('0' + chunk%10)
				chunk /= 10
				if chunk == 0 {
					return i
				}
			}
		}
		for k := 0; k < 19; k++ {
			i--
			buf[i] = byte('0' + chunk%10)
			chunk /= 10
		}
	}
}

func putDecimal[T char](dst []T, u U256, neg bool) (n int, ok bool) {
	var buf [MaxDecimalLen]byte
	start := decimalDigits(u, &buf)
	n = len(buf) - start
	i := 0
	if neg {
		n++
		i++
	}
	if len(dst) < n {
		return 0, false
	}
	if neg {
		dst[0] = '-'
	}
	for _, c := range buf[start:] {
		dst[i] = T(c)
		i++
	}
	return n, true
}

// PutHex writes the minimal hex form of u into dst and returns the number of
// bytes written. Zero is written as "0". If dst is too small, nothing is
// written and ok is false; a MaxHexLen buffer always suffices.
func (u U256) PutHex(dst []byte, flags HexFlags) (n int, ok bool) {
	return putHex(dst, u, hexDigitCount(u), flags, false)
}

// PutHex64 writes all 64 hex digits of u into dst, zero padded.
func (u U256) PutHex64(dst []byte, flags HexFlags) (n int, ok bool) {
	return putHex(dst, u, 64, flags, false)
}

// PutDecimal writes the decimal form of u into dst. A MaxDecimalLen buffer
// always suffices.
func (u U256) PutDecimal(dst []byte) (n int, ok bool) {
	return putDecimal(dst, u, false)
}

// PutHexUTF16 is PutHex for UTF-16 destinations; n counts code units.
func (u U256) PutHexUTF16(dst []uint16, flags HexFlags) (n int, ok bool) {
	return putHex(dst, u, hexDigitCount(u), flags, false)
}

func (u U256) PutHex64UTF16(dst []uint16, flags HexFlags) (n int, ok bool) {
	return putHex(dst, u, 64, flags, false)
}

func (u U256) PutDecimalUTF16(dst []uint16) (n int, ok bool) {
	return putDecimal(dst, u, false)
}

// AppendHex appends the minimal hex form of u to dst and returns the
// extended buffer.
func (u U256) AppendHex(dst []byte, flags HexFlags) []byte {
	var buf [MaxHexLen]byte
	n, _ := u.PutHex(buf[:], flags)
	return append(dst, buf[:n]...)
}

func (u U256) AppendHex64(dst []byte, flags HexFlags) []byte {
	var buf [MaxHexLen]byte
	n, _ := u.PutHex64(buf[:], flags)
	return append(dst, buf[:n]...)
}

func (u U256) AppendDecimal(dst []byte) []byte {
	var buf [MaxDecimalLen]byte
	n, _ := u.PutDecimal(buf[:])
	return append(dst, buf[:n]...)
}

func (u U256) String() string {
	var buf [MaxDecimalLen]byte
	n, _ := u.PutDecimal(buf[:])
	return string(buf[:n])
}

// Hex returns the minimal lower-case hex form with a 0x prefix, as used for
// EVM quantities.
func (u U256) Hex() string {
	var buf [MaxHexLen]byte
	n, _ := u.PutHex(buf[:], HexPrefix)
	return string(buf[:n])
}

// Hex64 returns all 64 lower-case hex digits with a 0x prefix.
func (u U256) Hex64() string {
	var buf [MaxHexLen]byte
	n, _ := u.PutHex64(buf[:], HexPrefix)
	return string(buf[:n])
}

// Format implements fmt.Formatter. The plain %d, %s, %v, %x and %X verbs,
// and %#x/%#X, are written directly; anything with a width, precision or
// other flag goes through big.Int.
func (u U256) Format(s fmt.State, c rune) {
	var buf [MaxSignedDecimalLen]byte
	if n, ok := formatPlain(s, c, u, false, buf[:]); ok {
		_, _ = s.Write(buf[:n])
		return
	}
	u.AsBigInt().Format(s, c)
}

func formatPlain(s fmt.State, c rune, u U256, neg bool, buf []byte) (n int, ok bool) {
	if _, set := s.Width(); set {
		return 0, false
	} else if _, set := s.Precision(); set {
		return 0, false
	} else if s.Flag('+') || s.Flag('-') || s.Flag(' ') || s.Flag('0') {
		return 0, false
	}

	var flags HexFlags
	if s.Flag('#') {
		flags |= HexPrefix
	}

	switch c {
	case 'd', 's', 'v':
		if flags != 0 {
			return 0, false
		}
		return putDecimal(buf, u, neg)
	case 'x':
		return putHex(buf, u, hexDigitCount(u), flags, neg)
	case 'X':
		return putHex(buf, u, hexDigitCount(u), flags|HexUpper, neg)
	}
	return 0, false
}

// PutHex writes i as an optional '-' followed by the minimal hex form of its
// magnitude, so that ParseI256Hex reads it back. A buffer of MaxHexLen+1
// always suffices.
func (i I256) PutHex(dst []byte, flags HexFlags) (n int, ok bool) {
	mag := i.AbsU256()
	return putHex(dst, mag, hexDigitCount(mag), flags, i.IsNeg())
}

// PutHex64 writes the raw two's complement form of i as 64 hex digits. The
// sign bit shows as a leading digit of 8 or above.
func (i I256) PutHex64(dst []byte, flags HexFlags) (n int, ok bool) {
	return putHex(dst, i.AsU256(), 64, flags, false)
}

// PutDecimal writes i in decimal with a leading '-' if negative. A
// MaxSignedDecimalLen buffer always suffices.
func (i I256) PutDecimal(dst []byte) (n int, ok bool) {
	return putDecimal(dst, i.AbsU256(), i.IsNeg())
}

func (i I256) PutHexUTF16(dst []uint16, flags HexFlags) (n int, ok bool) {
	mag := i.AbsU256()
	return putHex(dst, mag, hexDigitCount(mag), flags, i.IsNeg())
}

func (i I256) PutHex64UTF16(dst []uint16, flags HexFlags) (n int, ok bool) {
	return putHex(dst, i.AsU256(), 64, flags, false)
}

func (i I256) PutDecimalUTF16(dst []uint16) (n int, ok bool) {
	return putDecimal(dst, i.AbsU256(), i.IsNeg())
}

func (i I256) AppendHex(dst []byte, flags HexFlags) []byte {
	var buf [MaxHexLen + 1]byte
	n, _ := i.PutHex(buf[:], flags)
	return append(dst, buf[:n]...)
}

func (i I256) AppendHex64(dst []byte, flags HexFlags) []byte {
	var buf [MaxHexLen]byte
	n, _ := i.PutHex64(buf[:], flags)
	return append(dst, buf[:n]...)
}

func (i I256) AppendDecimal(dst []byte) []byte {
	var buf [MaxSignedDecimalLen]byte
	n, _ := i.PutDecimal(buf[:])
	return append(dst, buf[:n]...)
}

func (i I256) String() string {
	var buf [MaxSignedDecimalLen]byte
	n, _ := i.PutDecimal(buf[:])
	return string(buf[:n])
}

// Hex returns "0x" and the minimal hex magnitude, preceded by '-' if
// negative.
func (i I256) Hex() string {
	var buf [MaxHexLen + 1]byte
	n, _ := i.PutHex(buf[:], HexPrefix)
	return string(buf[:n])
}

// Hex64 returns the 64-digit two's complement form with a 0x prefix.
func (i I256) Hex64() string {
	var buf [MaxHexLen]byte
	n, _ := i.PutHex64(buf[:], HexPrefix)
	return string(buf[:n])
}

func (i I256) Format(s fmt.State, c rune) {
	var buf [MaxSignedDecimalLen]byte
	if n, ok := formatPlain(s, c, i.AbsU256(), i.IsNeg(), buf[:]); ok {
		_, _ = s.Write(buf[:n])
		return
	}
	i.AsBigInt().Format(s, c)
}
