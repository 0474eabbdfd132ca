package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestMul256To512(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 32)

	for i := 0; i < 50000; i++ {
		u1, u2 := randU256(scratch), randU256(scratch)
		hi, lo := mul256to512(u1, u2)

		rb := new(big.Int).Mul(u1.AsBigInt(), u2.AsBigInt())
		rc := new(big.Int).Lsh(hi.AsBigInt(), 256)
		rc.Or(rc, lo.AsBigInt())
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
		tt.MustEqual(lo, mul256(u1, u2), "failed at index %d", i)
	}
}

func TestMulAdd64(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 32)

	for i := 0; i < 50000; i++ {
		u := randU256(scratch)
		m, a := globalRNG.Uint64(), globalRNG.Uint64()
		v, spill := mulAdd64(u, m, a)

		rb := new(big.Int).Mul(u.AsBigInt(), bigU64(m))
		rb.Add(rb, bigU64(a))
		rc := new(big.Int).Lsh(bigU64(spill), 256)
		rc.Or(rc, v.AsBigInt())
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
	}
}

func TestQuoRem256By64(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 32)

	for i := 0; i < 50000; i++ {
		u := randU256(scratch)
		by := globalRNG.Uint64() >> uint(globalRNG.Intn(64))
		if by == 0 {
			by = 1
		}
		q, r := quorem256by64(u, by)

		bq, br := new(big.Int).QuoRem(u.AsBigInt(), bigU64(by), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "failed at index %d", i)
		tt.MustEqual(br.Uint64(), r, "failed at index %d", i)
	}
}

func TestQuoRem256Bin(t *testing.T) {
	tt := assert.WrapTB(t)

	scratch := make([]byte, 32)

	for i := 0; i < 20000; i++ {
		u := randU256(scratch)
		by := randU256(scratch).Rsh(uint(globalRNG.Intn(256)))
		if by.IsZero() {
			continue
		}
		q, r := quorem256bin(u, by)

		bq, br := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "failed at index %d", i)
		tt.MustEqual(br.String(), r.String(), "failed at index %d", i)
	}
}

func BenchmarkMul256To512(b *testing.B) {
	u1, u2 := U256{hi: 1234, lo: 5678}, U256{hi: 9123, lo: 5678}
	for i := 0; i < b.N; i++ {
		BenchU256Result, _ = mul256to512(u1, u2)
	}
}

func BenchmarkQuoRem256By64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result, BenchUint64Result = quorem256by64(MaxU256, tenToThe19)
	}
}
