package num

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

var i64 = I256From64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func i256s(s string) I256 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(s)
	}
	i, acc := I256FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num: inaccurate i256 %s", s))
	}
	return i
}

func TestI256FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(I256From8(-128), i256s("-128"))
	tt.MustEqual(I256From16(-32768), i256s("-32768"))
	tt.MustEqual(I256From32(-2147483648), i256s("-2147483648"))
	tt.MustEqual(I256FromInt(42), i64(42))
	tt.MustEqual(I256FromU64(maxUint64), I256{lo: maxUint64})
	tt.MustEqual(I256FromRaw(maxUint64, maxUint64, maxUint64, maxUint64), i64(-1))
}

func TestI256Abs(t *testing.T) {
	for idx, tc := range []struct {
		a, b I256
	}{
		{i64(0), i64(0)},
		{i64(1), i64(1)},
		{i64(-1), i64(1)},
		{I256{lo: maxUint64}, I256{lo: maxUint64}},
		{MaxI256.Neg(), MaxI256},

		{MinI256, MinI256}, // Overflow
	} {
		t.Run(fmt.Sprintf("%d/|%s|=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Abs())
		})
	}
}

func TestI256AbsU256(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(U256{hi: signBit}, MinI256.AbsU256())
	tt.MustEqual(u64(1), i64(-1).AbsU256())
	tt.MustEqual(MaxI256.AsU256(), MaxI256.AbsU256())
}

func TestI256Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I256
	}{
		{i64(-2), i64(-1), i64(-3)},
		{i64(-2), i64(1), i64(-1)},
		{i64(-1), i64(1), i64(0)},
		{i64(1), i64(2), i64(3)},
		{I256{lo: maxUint64}, i64(1), I256{lm: 1}},
		{MaxI256, i64(1), MinI256}, // Overflow wraps
		{MinI256, i64(-1), MaxI256},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))
		})
	}
}

func TestI256Checked(t *testing.T) {
	for idx, tc := range []struct {
		op       string
		a, b     I256
		overflow bool
	}{
		{"add", MaxI256, i64(1), true},
		{"add", MinI256, i64(-1), true},
		{"add", MaxI256, i64(-1), false},
		{"add", MaxI256, MinI256, false},
		{"sub", MinI256, i64(1), true},
		{"sub", i64(0), MinI256, true},
		{"sub", i64(-1), MinI256, false},
		{"sub", MaxI256, i64(-1), true},
		{"mul", MaxI256, i64(2), true},
		{"mul", MinI256, i64(-1), true},
		{"mul", MinI256, i64(1), false},
		{"mul", i256s("-0x8000000000000000 0000000000000000 0000000000000000 000000000000000"), i64(16), false},
		{"mul", i256s("0x8000000000000000 0000000000000000 0000000000000000 000000000000000"), i64(16), true},
		{"mul", i64(-3), i64(-5), false},
	} {
		t.Run(fmt.Sprintf("%d/%s %s %s", idx, tc.a, tc.op, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)

			var v, wrapped I256
			var overflow bool
			var err error
			var exact *big.Int
			switch tc.op {
			case "add":
				v, err = tc.a.AddChecked(tc.b)
				wrapped, overflow = tc.a.AddOverflow(tc.b)
				exact = new(big.Int).Add(tc.a.AsBigInt(), tc.b.AsBigInt())
			case "sub":
				v, err = tc.a.SubChecked(tc.b)
				wrapped, overflow = tc.a.SubOverflow(tc.b)
				exact = new(big.Int).Sub(tc.a.AsBigInt(), tc.b.AsBigInt())
			case "mul":
				v, err = tc.a.MulChecked(tc.b)
				wrapped, overflow = tc.a.MulOverflow(tc.b)
				exact = new(big.Int).Mul(tc.a.AsBigInt(), tc.b.AsBigInt())
			}

			tt.MustEqual(tc.overflow, overflow)
			tt.MustEqual(wrapBigI256Result(exact).String(), wrapped.String())
			if tc.overflow {
				tt.MustAssert(errors.Is(err, ErrOverflow))
			} else {
				tt.MustOK(err)
				tt.MustEqual(exact.String(), v.String())
			}
		})
	}
}

func TestI256AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I256
		b *big.Int
	}{
		{i64(-1), bigI64(-1)},
		{i64(-1 << 63), bigI64(-1 << 63)},
		{I256{lm: 1}, bigs("18446744073709551616")},
		{MaxI256, maxBigI256},
		{MinI256, minBigI256},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI256FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   I256
		acc bool
	}{
		{bigI64(-2), i64(-2), true},
		{maxBigI256, MaxI256, true},
		{minBigI256, MinI256, true},
		{new(big.Int).Add(maxBigI256, big1), MaxI256, false},
		{new(big.Int).Sub(minBigI256, big1), MinI256, false},
		{maxBigU256, MaxI256, false},
		{new(big.Int).Neg(wrapBigU256), MinI256, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := I256FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestI256AsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a    I256
		out  int64
		isIn bool
	}{
		{i64(-1), -1, true},
		{i64(minInt64), minInt64, true},
		{i64(maxInt64), maxInt64, true},
		{i64(maxInt64).Inc(), minInt64, false},
		{i64(minInt64).Dec(), maxInt64, false},
		{MinI256, 0, false},
	} {
		t.Run(fmt.Sprintf("%d/int64(%s)=%d", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsInt64())
			tt.MustEqual(tc.isIn, tc.a.IsInt64())
		})
	}
}

func TestI256Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b I256
		cmp  int
	}{
		{i64(-1), i64(1), -1},
		{i64(-2), i64(-1), -1},
		{i64(1), i64(-1), 1},
		{MinI256, MaxI256, -1},
		{MinI256, i64(-1), -1},
		{i64(0), i64(-1), 1},
		{MaxI256, MaxI256, 0},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.cmp, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.cmp >= 0, tc.a.GreaterOrEqualTo(tc.b))
		})
	}
}

func TestI256Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I256
	}{
		{i64(0), i64(0)},
		{i64(-2), i64(2)},
		{i64(2), i64(-2)},
		{MaxI256, MinI256.Inc()},
		{MinI256, MinI256}, // Overflow wraps
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Neg())
		})
	}
}

func TestI256NegChecked(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := MinI256.NegChecked()
	tt.MustAssert(errors.Is(err, ErrOverflow))

	v, err := MaxI256.NegChecked()
	tt.MustOK(err)
	tt.MustEqual(MinI256.Inc(), v)
}

func TestI256Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, i64(1).Sign())
	tt.MustEqual(-1, i64(-1).Sign())
	tt.MustEqual(-1, MinI256.Sign())
	tt.MustEqual(1, MaxI256.Sign())
	tt.MustAssert(MinI256.IsNeg())
	tt.MustAssert(!MaxI256.IsNeg())
	tt.MustAssert(MaxI256.IsU256())
	tt.MustAssert(!i64(-1).IsU256())
}

func TestI256QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		i, by, q, r I256
	}{
		{i: i64(1), by: i64(2), q: i64(0), r: i64(1)},
		{i: i64(10), by: i64(3), q: i64(3), r: i64(1)},
		{i: i64(-10), by: i64(3), q: i64(-3), r: i64(-1)},
		{i: i64(10), by: i64(-3), q: i64(-3), r: i64(1)},
		{i: i64(-10), by: i64(-3), q: i64(3), r: i64(-1)},
		{i: MinI256, by: i64(2), q: i256s("-0x4000000000000000 0000000000000000 0000000000000000 0000000000000000"), r: i64(0)},
		{i: MinI256, by: MinI256, q: i64(1), r: i64(0)},
		{i: MaxI256, by: MinI256, q: i64(0), r: MaxI256},
		{i: MinI256, by: i64(-1), q: MinI256, r: i64(0)}, // Overflow wraps, like int64
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.i, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.i.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(q, tc.i.Quo(tc.by))
			tt.MustEqual(r, tc.i.Rem(tc.by))
		})
	}
}

func TestI256QuoRemChecked(t *testing.T) {
	tt := assert.WrapTB(t)

	_, _, err := MinI256.QuoRemChecked(i64(-1))
	tt.MustAssert(errors.Is(err, ErrOverflow))
	_, err = MinI256.QuoChecked(i64(-1))
	tt.MustAssert(errors.Is(err, ErrOverflow))

	r, err := MinI256.RemChecked(i64(-1))
	tt.MustOK(err)
	tt.MustAssert(r.IsZero())

	_, _, err = i64(1).QuoRemChecked(i64(0))
	tt.MustAssert(errors.Is(err, ErrDivideByZero))
	_, err = i64(1).RemChecked(i64(0))
	tt.MustAssert(errors.Is(err, ErrDivideByZero))

	q, r, err := i64(-7).QuoRemChecked(i64(2))
	tt.MustOK(err)
	tt.MustEqual(i64(-3), q)
	tt.MustEqual(i64(-1), r)
}

func TestI256Rsh(t *testing.T) {
	for idx, tc := range []struct {
		i  I256
		by uint
		r  I256
	}{
		{i: i64(-1), by: 1, r: i64(-1)},
		{i: i64(-1), by: 300, r: i64(-1)},
		{i: i64(-4), by: 1, r: i64(-2)},
		{i: i64(-5), by: 1, r: i64(-3)}, // rounds toward negative infinity
		{i: i64(4), by: 1, r: i64(2)},
		{i: MaxI256, by: 300, r: i64(0)},
		{i: MinI256, by: 255, r: i64(-1)},
		{i: MinI256, by: 192, r: i64(minInt64)},
	} {
		t.Run(fmt.Sprintf("%d/%s>>%d=%s", idx, tc.i, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.r, tc.i.Rsh(tc.by))

			ib := tc.i.AsBigInt()
			tt.MustEqual(ib.Rsh(ib, tc.by).String(), tc.r.String())
		})
	}
}

func TestI256Lsh(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-2), i64(-1).Lsh(1))
	tt.MustEqual(MinI256, i64(-1).Lsh(255))
	tt.MustEqual(i64(0), i64(-1).Lsh(256))
	tt.MustEqual(MinI256, i64(1).Lsh(255))
}

func TestI256Bits(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-1), i64(0).Not())
	tt.MustEqual(i64(-8), i64(-1).AndNot(i64(7)))
	tt.MustEqual(i64(-1), i64(-8).Or(i64(7)))
	tt.MustEqual(i64(7), i64(-1).And(i64(7)))
	tt.MustEqual(i64(-8), i64(-1).Xor(i64(7)))
	tt.MustEqual(uint(0), i64(-1).LeadingZeros())
	tt.MustEqual(uint(255), i64(1).LeadingZeros())
	tt.MustEqual(256, MinI256.BitLen())
	tt.MustEqual(1, i64(-1).BitLen())
	tt.MustEqual(256, i64(-1).OnesCount())
}

func TestI256ByteCount(t *testing.T) {
	for idx, tc := range []struct {
		i I256
		n int
	}{
		{i64(0), 0},
		{i64(1), 1},
		{i64(-1), 1},
		{i64(127), 1},
		{i64(-128), 1},
		{i64(128), 2},
		{i64(-129), 2},
		{MaxI256, 32},
		{MinI256, 32},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.i), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.n, tc.i.ByteCount())
		})
	}
}

func TestDifferenceI256(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u64(3), DifferenceI256(i64(-1), i64(2)))
	tt.MustEqual(u64(3), DifferenceI256(i64(2), i64(-1)))
	tt.MustEqual(MaxU256, DifferenceI256(MinI256, MaxI256))
	tt.MustEqual(i64(2), LargerI256(i64(-1), i64(2)))
	tt.MustEqual(i64(-1), SmallerI256(i64(-1), i64(2)))
}

func BenchmarkI256Mul(b *testing.B) {
	v := i256s("-0x1234567890abcdef1234567890abcdef")
	for i := 0; i < b.N; i++ {
		BenchI256Result = v.Mul(v)
	}
}

func BenchmarkI256QuoRem(b *testing.B) {
	v, by := MinI256.Inc(), i64(-1000000000000000000)
	for i := 0; i < b.N; i++ {
		BenchI256Result, _ = v.QuoRem(by)
	}
}

func BenchmarkI256LessThan(b *testing.B) {
	for _, iv := range []struct {
		name string
		a, b I256
	}{
		{"0<1", i64(0), i64(1)},
		{"-1<1", i64(-1), i64(1)},
		{"min<max", MinI256, MaxI256},
	} {
		b.Run(iv.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}
