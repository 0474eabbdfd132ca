package num

import (
	"math/big"
)

// bigBridge is the cold path for the operations the fixed width engine
// doesn't do itself. It sits behind an interface so the arbitrary precision
// implementation can be swapped without touching the hot path signatures.
type bigBridge interface {
	// quoRem divides u by a divisor wider than 64 bits, where u > by.
	quoRem(u, by U256) (q, r U256)
}

var coldPath bigBridge = mathBigBridge{}

// mathBigBridge routes through math/big.
type mathBigBridge struct{}

func (mathBigBridge) quoRem(u, by U256) (q, r U256) {
	var ub, bb, qb, rb big.Int
	u.IntoBigInt(&ub)
	by.IntoBigInt(&bb)
	qb.QuoRem(&ub, &bb, &rb)
	q, _ = U256FromBigInt(&qb)
	r, _ = U256FromBigInt(&rb)
	return q, r
}

// binaryBridge uses the shift-subtract loop in arith.go and never allocates.
type binaryBridge struct{}

func (binaryBridge) quoRem(u, by U256) (q, r U256) { return quorem256bin(u, by) }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'. Negative numbers yield 0 and 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) > 4 {
			return MaxU256, false
		}
		var l [4]uint64
		for i, w := range words {
			l[i] = uint64(w)
		}
		return u256FromLimbs(l), true

	case 32:
		if len(words) > 8 {
			return MaxU256, false
		}
		var l [4]uint64
		for i, w := range words {
			l[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return u256FromLimbs(l), true

	default:
		panic("num: unsupported bit size")
	}
}

// IntoBigInt copies this U256 into a big.Int, allowing you to retain and
// recycle memory.
func (u U256) IntoBigInt(b *big.Int) {
	l := u.limbs()

	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < 4 {
			words = make([]big.Word, 4)
		}
		words = words[:4]
		for i := range l {
			words[i] = big.Word(l[i])
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < 8 {
			words = make([]big.Word, 8)
		}
		words = words[:8]
		for i := range l {
			words[i*2] = big.Word(l[i] & 0xFFFFFFFF)
			words[i*2+1] = big.Word(l[i] >> 32)
		}
		b.SetBits(words)

	default:
		panic("num: unsupported bit size")
	}
}

// AsBigInt allocates a new big.Int and copies this U256 into it.
func (u U256) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// I256FromBigInt creates an I256 from a big.Int. Overflow truncates to
// MaxI256/MinI256 and sets accurate to 'false'.
func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	neg := v.Sign() < 0

	var mag big.Int
	mag.Abs(v)
	u, accurate := U256FromBigInt(&mag)

	if !neg {
		if !accurate || u.hi&signBit != 0 {
			return MaxI256, false
		}
		return u.AsI256(), true
	}

	if cmp := u.Cmp(minI256AsAbsU256); !accurate || cmp > 0 {
		return MinI256, false
	}
	return u.AsI256().Neg(), true
}

// IntoBigInt copies this I256 into a big.Int, allowing you to retain and
// recycle memory.
func (i I256) IntoBigInt(b *big.Int) {
	i.AbsU256().IntoBigInt(b)
	if i.IsNeg() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I256 into it.
func (i I256) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}
