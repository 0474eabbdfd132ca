package num

import (
	"math/bits"
)

// I256 is a signed 256-bit integer in two's complement. It has the same
// layout as U256; bit 63 of hi is the sign.
type I256 struct {
	hi, hm, lm, lo uint64
}

// I256FromRaw is the complement to I256.Raw(); it creates an I256 from four
// uint64s, most significant first.
func I256FromRaw(hi, hm, lm, lo uint64) I256 {
	return I256{hi: hi, hm: hm, lm: lm, lo: lo}
}

func I256From64(v int64) I256 {
	var fill uint64
	if v < 0 {
		fill = maxUint64
	}
	return I256{hi: fill, hm: fill, lm: fill, lo: uint64(v)}
}

func I256From32(v int32) I256   { return I256From64(int64(v)) }
func I256From16(v int16) I256   { return I256From64(int64(v)) }
func I256From8(v int8) I256     { return I256From64(int64(v)) }
func I256FromInt(v int) I256    { return I256From64(int64(v)) }
func I256FromU64(v uint64) I256 { return I256{lo: v} }

// RandI256 generates a positive signed 256-bit random integer from an
// external source.
func RandI256(source RandSource) (out I256) {
	return I256{hi: source.Uint64() & maxInt64, hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

func (i I256) IsZero() bool { return i == zeroI256 }

// IsNeg reports whether the sign bit is set.
func (i I256) IsNeg() bool { return i.hi&signBit != 0 }

// Raw returns access to the I256 as four uint64s, most significant first.
func (i I256) Raw() (hi, hm, lm, lo uint64) { return i.hi, i.hm, i.lm, i.lo }

// AsU256 performs a direct cast of an I256 to a U256. Negative numbers
// become values > MaxI256.
func (i I256) AsU256() U256 { return U256{hi: i.hi, hm: i.hm, lm: i.lm, lo: i.lo} }

// IsU256 reports whether i can be represented in a U256.
func (i I256) IsU256() bool { return i.hi&signBit == 0 }

// AsInt64 truncates the I256 to fit in an int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I256) AsInt64() int64 { return int64(i.lo) }

// IsInt64 reports whether i can be represented as an int64.
func (i I256) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.hm == maxUint64 && i.lm == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.hm == 0 && i.lm == 0 && i.lo <= maxInt64
}

func (i I256) Sign() int {
	if i == zeroI256 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Inc() I256 { return i.AsU256().Inc().AsI256() }
func (i I256) Dec() I256 { return i.AsU256().Dec().AsI256() }

// Add returns i+n, wrapping on overflow as Go's fixed size integers do.
func (i I256) Add(n I256) I256 {
	v, _ := add256(i.AsU256(), n.AsU256())
	return v.AsI256()
}

// AddOverflow returns i+n, wrapped, and whether the true sum fell outside
// [MinI256, MaxI256]: both operands share a sign that the result does not.
func (i I256) AddOverflow(n I256) (v I256, overflow bool) {
	v = i.Add(n)
	return v, (i.hi^n.hi)&signBit == 0 && (i.hi^v.hi)&signBit != 0
}

func (i I256) AddChecked(n I256) (I256, error) {
	v, overflow := i.AddOverflow(n)
	if overflow {
		return I256{}, ErrOverflow
	}
	return v, nil
}

// Sub returns i-n, wrapping on overflow.
func (i I256) Sub(n I256) I256 {
	v, _ := sub256(i.AsU256(), n.AsU256())
	return v.AsI256()
}

// SubOverflow returns i-n, wrapped, and whether the true difference fell
// outside the signed range: the operands differ in sign and the result's
// sign differs from i.
func (i I256) SubOverflow(n I256) (v I256, overflow bool) {
	v = i.Sub(n)
	return v, (i.hi^n.hi)&signBit != 0 && (i.hi^v.hi)&signBit != 0
}

func (i I256) SubChecked(n I256) (I256, error) {
	v, overflow := i.SubOverflow(n)
	if overflow {
		return I256{}, ErrOverflow
	}
	return v, nil
}

// Neg returns -i. The only value without a positive counterpart is MinI256,
// which wraps to itself: -MinI256 == MinI256.
func (i I256) Neg() I256 {
	v, _ := sub256(zeroU256, i.AsU256())
	return v.AsI256()
}

// NegChecked returns -i, or ErrOverflow for MinI256.
func (i I256) NegChecked() (I256, error) {
	if i == MinI256 {
		return I256{}, ErrOverflow
	}
	return i.Neg(), nil
}

// Abs returns |i|. Like Neg, Abs(MinI256) == MinI256.
func (i I256) Abs() I256 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// AbsU256 returns the magnitude of i. Unlike Abs this is total:
// MinI256.AbsU256() is 1<<255.
func (i I256) AbsU256() U256 {
	if i.hi&signBit != 0 {
		v, _ := sub256(zeroU256, i.AsU256())
		return v
	}
	return i.AsU256()
}

// Mul returns the low 256 bits of i*n. Two's complement multiplication
// produces the same low bits as unsigned multiplication.
func (i I256) Mul(n I256) I256 {
	return mul256(i.AsU256(), n.AsU256()).AsI256()
}

// MulOverflow returns i*n, wrapped, and whether the true product falls
// outside the signed range.
func (i I256) MulOverflow(n I256) (v I256, overflow bool) {
	v = i.Mul(n)
	neg := i.IsNeg() != n.IsNeg()
	hi, lo := mul256to512(i.AbsU256(), n.AbsU256())
	if !hi.IsZero() {
		return v, true
	}
	if neg {
		return v, lo.GreaterThan(minI256AsAbsU256)
	}
	return v, lo.hi&signBit != 0
}

func (i I256) MulChecked(n I256) (I256, error) {
	v, overflow := i.MulOverflow(n)
	if overflow {
		return I256{}, ErrOverflow
	}
	return v, nil
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI256 / -1 wraps to MinI256, as it does for Go's int64.
func (i I256) QuoRem(by I256) (q, r I256) {
	qu, ru := i.AbsU256().QuoRem(by.AbsU256())
	q, r = qu.AsI256(), ru.AsI256()
	if i.IsNeg() != by.IsNeg() {
		q = q.Neg()
	}
	if i.IsNeg() {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I256) Quo(by I256) (q I256) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i I256) Rem(by I256) (r I256) {
	_, r = i.QuoRem(by)
	return r
}

// QuoRemChecked is QuoRem, but returns ErrDivideByZero for a zero divisor and
// ErrOverflow for MinI256 / -1.
func (i I256) QuoRemChecked(by I256) (q, r I256, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}
	if i == MinI256 && by == minusOneI256 {
		return q, r, ErrOverflow
	}
	q, r = i.QuoRem(by)
	return q, r, nil
}

func (i I256) QuoChecked(by I256) (I256, error) {
	q, _, err := i.QuoRemChecked(by)
	return q, err
}

func (i I256) RemChecked(by I256) (I256, error) {
	if by.IsZero() {
		return I256{}, ErrDivideByZero
	}
	return i.Rem(by), nil
}

// Cmp compares i to n and returns -1, 0 or +1. Values of differing sign
// order directly; within a sign two's complement order matches unsigned
// order.
func (i I256) Cmp(n I256) int {
	if i == n {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		return i.AsU256().Cmp(n.AsU256())
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I256) Equal(n I256) bool {
	return i.hi == n.hi && i.hm == n.hm && i.lm == n.lm && i.lo == n.lo
}

func (i I256) GreaterThan(n I256) bool      { return i.Cmp(n) > 0 }
func (i I256) GreaterOrEqualTo(n I256) bool { return i.Cmp(n) >= 0 }
func (i I256) LessThan(n I256) bool         { return i.Cmp(n) < 0 }
func (i I256) LessOrEqualTo(n I256) bool    { return i.Cmp(n) <= 0 }

func (i I256) And(n I256) I256    { return i.AsU256().And(n.AsU256()).AsI256() }
func (i I256) AndNot(n I256) I256 { return i.AsU256().AndNot(n.AsU256()).AsI256() }
func (i I256) Or(n I256) I256     { return i.AsU256().Or(n.AsU256()).AsI256() }
func (i I256) Xor(n I256) I256    { return i.AsU256().Xor(n.AsU256()).AsI256() }
func (i I256) Not() I256          { return i.AsU256().Not().AsI256() }

// Lsh returns i<<n. Shifts of 256 or more yield zero.
func (i I256) Lsh(n uint) I256 {
	return i.AsU256().Lsh(n).AsI256()
}

// Rsh is an arithmetic shift: vacated bits are filled with the sign bit, so
// shifting a negative number by 256 or more yields -1.
func (i I256) Rsh(n uint) I256 {
	if i.hi&signBit == 0 {
		return i.AsU256().Rsh(n).AsI256()
	}
	// For negative x, x>>n == ^(^x >>> n).
	return i.AsU256().Not().Rsh(n).Not().AsI256()
}

// LeadingZeros returns the number of leading zero bits of the two's
// complement form; 0 for any negative number.
func (i I256) LeadingZeros() uint { return i.AsU256().LeadingZeros() }

// BitLen returns the number of bits needed for |i|, like big.Int.BitLen.
func (i I256) BitLen() int { return i.AbsU256().BitLen() }

func (i I256) OnesCount() int {
	return bits.OnesCount64(i.hi) + bits.OnesCount64(i.hm) +
		bits.OnesCount64(i.lm) + bits.OnesCount64(i.lo)
}
