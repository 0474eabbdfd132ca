package num

// pow10 holds every power of ten that fits in a uint64.
var pow10 = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// maxPow10 is the largest n for which 10^n fits in a U256.
const maxPow10 = 77

// Pow10U256 returns 10^n. n above 77 returns ErrOverflow.
func Pow10U256(n uint) (U256, error) {
	return U256From64(1).MulPow10(n)
}

// MulPow10 returns u*10^n, or ErrOverflow if the product does not fit.
func (u U256) MulPow10(n uint) (U256, error) {
	if u.IsZero() {
		return u, nil
	} else if n > maxPow10 {
		return U256{}, ErrOverflow
	}
	for n > 0 {
		step := n
		if step > 19 {
			step = 19
		}
		var spill uint64
		u, spill = mulAdd64(u, pow10[step], 0)
		if spill != 0 {
			return U256{}, ErrOverflow
		}
		n -= step
	}
	return u, nil
}

// QuoPow10 returns u/10^n, truncated.
func (u U256) QuoPow10(n uint) U256 {
	if n > maxPow10 {
		return U256{}
	}
	for n > 0 && !u.IsZero() {
		step := n
		if step > 19 {
			step = 19
		}
		u, _ = quorem256by64(u, pow10[step])
		n -= step
	}
	return u
}

// QuoRemPow10 returns u/10^n and u%10^n.
func (u U256) QuoRemPow10(n uint) (q, r U256) {
	if n > maxPow10 {
		return U256{}, u
	}
	q = u.QuoPow10(n)
	p, _ := Pow10U256(n)
	return q, u.Sub(mul256(q, p))
}

// ScaleUnits converts a whole number of tokens into base units for a token
// with the given number of decimals: ScaleUnits(2, 18) is 2 ether in wei.
func ScaleUnits(whole U256, decimals uint) (U256, error) {
	return whole.MulPow10(decimals)
}

// SplitUnits splits an amount of base units into whole tokens and the
// remaining fraction, in base units.
func (u U256) SplitUnits(decimals uint) (whole, frac U256) {
	return u.QuoRemPow10(decimals)
}

// ParseUnits parses a decimal token amount such as "1.5" into base units.
// The fraction may not have more digits than decimals.
func ParseUnits[T text](s T, decimals uint) (U256, error) {
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}

	wholeEnd, fracDigits := len(s), 0
	if dot >= 0 {
		wholeEnd, fracDigits = dot, len(s)-dot-1
		if fracDigits == 0 {
			return U256{}, formatErr("units", s, reasonEmpty)
		}
	}
	if wholeEnd == 0 {
		return U256{}, formatErr("units", s, reasonEmpty)
	} else if uint(fracDigits) > decimals {
		return U256{}, formatErr("units", s, reasonFraction)
	}

	var u U256
	for i := 0; i < len(s); i++ {
		if i == dot {
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return U256{}, formatErr("units", s, reasonDigit)
		}
		var spill uint64
		u, spill = mulAdd64(u, 10, uint64(c-'0'))
		if spill != 0 {
			return U256{}, overflowErr("units", s)
		}
	}

	u, err := u.MulPow10(decimals - uint(fracDigits))
	if err != nil {
		return U256{}, overflowErr("units", s)
	}
	return u, nil
}

// FormatUnits formats u base units as a decimal token amount with trailing
// fractional zeros removed: 1500000000000000000 with 18 decimals is "1.5".
func (u U256) FormatUnits(decimals uint) string {
	whole, frac := u.SplitUnits(decimals)
	out := whole.AppendDecimal(make([]byte, 0, MaxDecimalLen+decimals+1))
	if frac.IsZero() {
		return string(out)
	}

	var buf [MaxDecimalLen]byte
	start := decimalDigits(frac, &buf)
	digits := buf[start:]
	for digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}

	out = append(out, '.')
	for pad := int(decimals) - (len(buf) - start); pad > 0; pad-- {
		out = append(out, '0')
	}
	return string(append(out, digits...))
}
