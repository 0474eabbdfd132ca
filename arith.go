package num

import (
	"math/bits"
)

// Limb primitives shared by U256 and I256. Both types use the same four
// uint64 words, least significant first when viewed as an array, so the
// signed code borrows these by reinterpreting itself as a U256.

func (u U256) limbs() [4]uint64 { return [4]uint64{u.lo, u.lm, u.hm, u.hi} }

func u256FromLimbs(l [4]uint64) U256 {
	return U256{hi: l[3], hm: l[2], lm: l[1], lo: l[0]}
}

func add256(u, n U256) (v U256, carry uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.lm, carry = bits.Add64(u.lm, n.lm, carry)
	v.hm, carry = bits.Add64(u.hm, n.hm, carry)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry
}

func sub256(u, n U256) (v U256, borrow uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.lm, borrow = bits.Sub64(u.lm, n.lm, borrow)
	v.hm, borrow = bits.Sub64(u.hm, n.hm, borrow)
	v.hi, borrow = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrow
}

// mul256to512 is schoolbook long multiplication over the 4x4 limb grid. Each
// row multiplies one limb of u by every limb of n as 128-bit partial
// products, folding the previous row's output and the running carry into
// each cell.
func mul256to512(u, n U256) (hi, lo U256) {
	x, y := u.limbs(), n.limbs()

	var z [8]uint64
	for i := 0; i < 4; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			carry, z[i+j] = mulAddStep(x[i], y[j], z[i+j], carry)
		}
		z[i+4] = carry
	}

	return U256{hi: z[7], hm: z[6], lm: z[5], lo: z[4]},
		U256{hi: z[3], hm: z[2], lm: z[1], lo: z[0]}
}

// mul256 computes only the low half of mul256to512.
func mul256(u, n U256) U256 {
	x, y := u.limbs(), n.limbs()

	var z [4]uint64
	for i := 0; i < 4; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < 4; j++ {
			carry, z[i+j] = mulAddStep(x[i], y[j], z[i+j], carry)
		}
	}
	return u256FromLimbs(z)
}

// mulAddStep returns x*y + z + carry as a 128-bit (hi, lo) pair. The result
// can't overflow: (2^64-1)^2 + 2(2^64-1) == 2^128-1.
func mulAddStep(x, y, z, carry uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(x, y)
	var c uint64
	lo, c = bits.Add64(lo, z, 0)
	hi += c
	lo, c = bits.Add64(lo, carry, 0)
	hi += c
	return hi, lo
}

// mulAdd64 computes u*m + a, returning the 64 bits that spill past limb 3.
func mulAdd64(u U256, m, a uint64) (v U256, spill uint64) {
	spill, v.lo = mulAddStep(u.lo, m, a, 0)
	spill, v.lm = mulAddStep(u.lm, m, spill, 0)
	spill, v.hm = mulAddStep(u.hm, m, spill, 0)
	spill, v.hi = mulAddStep(u.hi, m, spill, 0)
	return v, spill
}

// quorem256by64 is single pass long division from the most significant limb
// down, carrying each remainder into the next 128/64 step.
func quorem256by64(u U256, by uint64) (q U256, r uint64) {
	q.hi, r = bits.Div64(0, u.hi, by)
	q.hm, r = bits.Div64(r, u.hm, by)
	q.lm, r = bits.Div64(r, u.lm, by)
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}

// quorem256bin is shift-and-subtract binary long division. It is the slow
// but dependency free reference for the general divisor path; see bridge.go.
func quorem256bin(u, by U256) (q, r U256) {
	uLeading0, byLeading0 := u.LeadingZeros(), by.LeadingZeros()
	if uLeading0 > byLeading0 {
		return q, u
	}

	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if !u.LessThan(by) {
			u, _ = sub256(u, by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}
