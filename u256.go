package num

import (
	"math/bits"
)

// U256 is an unsigned 256-bit integer. The zero value is 0.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, hm, lm, lo uint64) U256 { return U256{hi: hi, hm: hm, lm: lm, lo: lo} }
func U256From64(v uint64) U256                { return U256{lo: v} }
func U256From32(v uint32) U256                { return U256{lo: uint64(v)} }
func U256From16(v uint16) U256                { return U256{lo: uint64(v)} }
func U256From8(v uint8) U256                  { return U256{lo: uint64(v)} }

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as four uint64s, most significant first.
// See U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// AsI256 performs a direct cast of a U256 to an I256, which will interpret it
// as a two's complement value.
func (u U256) AsI256() I256 { return I256{hi: u.hi, hm: u.hm, lm: u.lm, lo: u.lo} }

// IsI256 reports whether u can be represented in an I256.
func (u U256) IsI256() bool { return u.hi&signBit == 0 }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi|u.hm|u.lm == 0 }

func (u U256) Inc() (v U256) {
	v, _ = add256(u, U256{lo: 1})
	return v
}

func (u U256) Dec() (v U256) {
	v, _ = sub256(u, U256{lo: 1})
	return v
}

// Add returns u+n, wrapping modulo 2^256.
func (u U256) Add(n U256) (v U256) {
	v, _ = add256(u, n)
	return v
}

// AddOverflow returns u+n, wrapped, and whether a carry escaped the top limb.
func (u U256) AddOverflow(n U256) (v U256, overflow bool) {
	v, carry := add256(u, n)
	return v, carry != 0
}

// AddChecked returns u+n, or ErrOverflow if the sum exceeds MaxU256.
func (u U256) AddChecked(n U256) (U256, error) {
	v, carry := add256(u, n)
	if carry != 0 {
		return U256{}, ErrOverflow
	}
	return v, nil
}

// Sub returns u-n, wrapping modulo 2^256.
func (u U256) Sub(n U256) (v U256) {
	v, _ = sub256(u, n)
	return v
}

// SubOverflow returns u-n, wrapped, and whether the subtraction borrowed
// past the top limb (n > u).
func (u U256) SubOverflow(n U256) (v U256, overflow bool) {
	v, borrow := sub256(u, n)
	return v, borrow != 0
}

// SubChecked returns u-n, or ErrOverflow if n > u.
func (u U256) SubChecked(n U256) (U256, error) {
	v, borrow := sub256(u, n)
	if borrow != 0 {
		return U256{}, ErrOverflow
	}
	return v, nil
}

// Mul returns the low 256 bits of u*n.
func (u U256) Mul(n U256) U256 {
	return mul256(u, n)
}

// MulOverflow returns the low 256 bits of u*n and whether any of the high
// 256 bits were set.
func (u U256) MulOverflow(n U256) (v U256, overflow bool) {
	hi, lo := mul256to512(u, n)
	return lo, !hi.IsZero()
}

// MulChecked returns u*n, or ErrOverflow if the product exceeds MaxU256.
func (u U256) MulChecked(n U256) (U256, error) {
	hi, lo := mul256to512(u, n)
	if !hi.IsZero() {
		return U256{}, ErrOverflow
	}
	return lo, nil
}

// Mul512 returns the full 512-bit product of u and n as two halves.
func (u U256) Mul512(n U256) (hi, lo U256) {
	return mul256to512(u, n)
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go).
func (u U256) Quo(by U256) (q U256) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// Divisors that fit in 64 bits take a single pass over the limbs. Powers of
// two become shifts. Anything else is handed to the cold path in bridge.go.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic(ErrDivideByZero)
	}

	if by.IsUint64() {
		var r64 uint64
		q, r64 = quorem256by64(u, by.lo)
		return q, U256{lo: r64}
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	byLeading0, byTrailing0 := by.LeadingZeros(), by.TrailingZeros()
	if byLeading0+byTrailing0 == 255 {
		return u.Rsh(byTrailing0), u.And(by.Dec())
	}

	return coldPath.quoRem(u, by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U256) Rem(by U256) (r U256) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem64 divides by a 64-bit divisor using the single pass fast path. If by
// == 0, a division-by-zero run-time panic occurs.
func (u U256) QuoRem64(by uint64) (q U256, r uint64) {
	if by == 0 {
		panic(ErrDivideByZero)
	}
	return quorem256by64(u, by)
}

// QuoRemChecked is QuoRem, but returns ErrDivideByZero instead of panicking.
func (u U256) QuoRemChecked(by U256) (q, r U256, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}
	q, r = u.QuoRem(by)
	return q, r, nil
}

func (u U256) QuoChecked(by U256) (U256, error) {
	q, _, err := u.QuoRemChecked(by)
	return q, err
}

func (u U256) RemChecked(by U256) (U256, error) {
	_, r, err := u.QuoRemChecked(by)
	return r, err
}

// Cmp compares u to n and returns -1, 0 or +1. Limbs are compared from the
// most significant down, so most comparisons stop at the first limb.
func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(n U256) bool {
	return u.hi == n.hi && u.hm == n.hm && u.lm == n.lm && u.lo == n.lo
}

func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi &= n.hi
	u.hm &= n.hm
	u.lm &= n.lm
	u.lo &= n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi &^= n.hi
	u.hm &^= n.hm
	u.lm &^= n.lm
	u.lo &^= n.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi |= n.hi
	u.hm |= n.hm
	u.lm |= n.lm
	u.lo |= n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi ^= n.hi
	u.hm ^= n.hm
	u.lm ^= n.lm
	u.lo ^= n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

// Lsh returns u<<n. Shifts of 256 or more yield zero.
func (u U256) Lsh(n uint) U256 {
	if n == 0 {
		return u
	} else if n >= 256 {
		return U256{}
	}

	x := u.limbs()
	var z [4]uint64
	off, sh := int(n>>6), n&63
	for i := 3; i >= off; i-- {
		z[i] = x[i-off] << sh
		if sh != 0 && i > off {
			z[i] |= x[i-off-1] >> (64 - sh)
		}
	}
	return u256FromLimbs(z)
}

// Rsh returns u>>n. Shifts of 256 or more yield zero.
func (u U256) Rsh(n uint) U256 {
	if n == 0 {
		return u
	} else if n >= 256 {
		return U256{}
	}

	x := u.limbs()
	var z [4]uint64
	off, sh := int(n>>6), n&63
	for i := 0; i+off < 4; i++ {
		z[i] = x[i+off] >> sh
		if sh != 0 && i+off < 3 {
			z[i] |= x[i+off+1] << (64 - sh)
		}
	}
	return u256FromLimbs(z)
}

// LeadingZeros returns the number of leading zero bits; 256 for zero.
func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

// TrailingZeros returns the number of trailing zero bits; 256 for zero.
func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

// OnesCount returns the number of set bits.
func (u U256) OnesCount() int {
	return bits.OnesCount64(u.hi) + bits.OnesCount64(u.hm) +
		bits.OnesCount64(u.lm) + bits.OnesCount64(u.lo)
}

// BitLen returns the number of bits needed to represent u; 0 for zero.
func (u U256) BitLen() int {
	return 256 - int(u.LeadingZeros())
}

// Bit returns the value of the i'th bit of u. Bits past 255 are 0.
func (u U256) Bit(i uint) uint {
	if i >= 256 {
		return 0
	}
	return uint(u.limbs()[i>>6]>>(i&63)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1). Bits past 255 are
// ignored.
func (u U256) SetBit(i uint, b uint) U256 {
	if i >= 256 {
		return u
	}
	x := u.limbs()
	mask := uint64(1) << (i & 63)
	if b == 0 {
		x[i>>6] &^= mask
	} else {
		x[i>>6] |= mask
	}
	return u256FromLimbs(x)
}
