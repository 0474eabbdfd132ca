package num

// text is the input accepted by the parsers: a string, or UTF-8 bytes
// straight off the wire. Parsing either form does not allocate unless an
// error is returned.
type text interface {
	~string | ~[]byte
}

const invalidDigit = 0xff

var hexDigitValues = func() (t [256]uint8) {
	for i := range t {
		t[i] = invalidDigit
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = uint8(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = uint8(c-'a') + 10
		t[c-'a'+'A'] = uint8(c-'a') + 10
	}
	return t
}()

func hasHexPrefix[T text](s T, at int) bool {
	return len(s) >= at+2 && s[at] == '0' && (s[at+1] == 'x' || s[at+1] == 'X')
}

// parseHexDigits reads s[start:] as 0 to 64 hex digits; no digits is zero.
// Digits are taken in groups of 16 from the least significant end, one group
// per limb; a short leftover group becomes the most significant limb.
func parseHexDigits[T text](s T, start int) (u U256, reason string) {
	if len(s)-start > 64 {
		return u, reasonTooLong
	}

	var l [4]uint64
	end := len(s)
	for limb := 0; end > start; limb++ {
		begin := end - 16
		if begin < start {
			begin = start
		}
		var v uint64
		for j := begin; j < end; j++ {
			d := hexDigitValues[s[j]]
			if d == invalidDigit {
				return U256{}, reasonDigit
			}
			v = v<<4 | uint64(d)
		}
		l[limb] = v
		end = begin
	}
	return u256FromLimbs(l), ""
}

// parseDecimalDigits reads s[start:] one digit at a time as value*10 + digit
// across the whole 256-bit value. A bad digit anywhere in s is reported in
// preference to overflow.
func parseDecimalDigits[T text](s T, start int) (u U256, reason string, overflow bool) {
	if len(s)-start <= 0 {
		return u, reasonEmpty, false
	}
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return U256{}, reasonDigit, false
		}
		if overflow {
			continue
		}
		var spill uint64
		u, spill = mulAdd64(u, 10, uint64(c-'0'))
		overflow = spill != 0
	}
	if overflow {
		return U256{}, "", true
	}
	return u, "", false
}

// ParseU256Hex parses an optionally 0x-prefixed string of 0 to 64 hex digits
// in either case. "" and "0x" are zero.
func ParseU256Hex[T text](s T) (U256, error) {
	start := 0
	if hasHexPrefix(s, 0) {
		start = 2
	}
	u, reason := parseHexDigits(s, start)
	if reason != "" {
		return U256{}, formatErr("u256", s, reason)
	}
	return u, nil
}

// ParseU256Decimal parses an optionally '+'-prefixed string of decimal
// digits. Values above MaxU256 return ErrOverflow.
func ParseU256Decimal[T text](s T) (U256, error) {
	start := 0
	if len(s) > 0 && s[0] == '+' {
		start = 1
	}
	u, reason, overflow := parseDecimalDigits(s, start)
	if overflow {
		return U256{}, overflowErr("u256", s)
	} else if reason != "" {
		return U256{}, formatErr("u256", s, reason)
	}
	return u, nil
}

// ParseU256 parses hex if s has a 0x prefix, decimal otherwise.
func ParseU256[T text](s T) (U256, error) {
	if hasHexPrefix(s, 0) {
		return ParseU256Hex(s)
	}
	return ParseU256Decimal(s)
}

// ParseU256Quantity parses an EVM JSON-RPC quantity: a 0x prefix followed by
// hex digits without leading zeros. Zero is "0x0".
func ParseU256Quantity[T text](s T) (U256, error) {
	if !hasHexPrefix(s, 0) {
		return U256{}, formatErr("u256", s, reasonPrefix)
	}
	if len(s) == 2 {
		return U256{}, formatErr("u256", s, reasonEmpty)
	} else if len(s) > 3 && s[2] == '0' {
		return U256{}, formatErr("u256", s, reasonLeadingZero)
	}
	u, reason := parseHexDigits(s, 2)
	if reason != "" {
		return U256{}, formatErr("u256", s, reason)
	}
	return u, nil
}

// ParseU256Fixed parses exactly 64 hex digits, an explicit 32-byte value,
// with an optional 0x prefix.
func ParseU256Fixed[T text](s T) (U256, error) {
	start := 0
	if hasHexPrefix(s, 0) {
		start = 2
	}
	if len(s)-start != 64 {
		return U256{}, formatErr("u256", s, reasonFixedLength)
	}
	u, reason := parseHexDigits(s, start)
	if reason != "" {
		return U256{}, formatErr("u256", s, reason)
	}
	return u, nil
}

// ParseU256Unsigned parses decimal digits only: no sign, prefix or spaces.
func ParseU256Unsigned[T text](s T) (U256, error) {
	u, reason, overflow := parseDecimalDigits(s, 0)
	if overflow {
		return U256{}, overflowErr("u256", s)
	} else if reason != "" {
		return U256{}, formatErr("u256", s, reason)
	}
	return u, nil
}

// MustU256 parses s like ParseU256 and panics on error. It is meant for
// constants and tests.
func MustU256(s string) U256 {
	u, err := ParseU256(s)
	if err != nil {
		panic(err)
	}
	return u
}

func parseSign[T text](s T) (neg, signed bool, start int) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return true, true, 1
		case '+':
			return false, true, 1
		}
	}
	return false, false, 0
}

// ParseI256Hex parses signed hex. The grammar is:
//
//	-0x<0..64 digits>    negated magnitude, at most 1<<255 (MinI256)
//	+0x<0..64 digits>    magnitude, at most MaxI256
//	0x<64 digits>        raw two's complement; the sign bit may be set
//	0x<0..63 digits>     non-negative magnitude
//
// No digits is zero.
//
// The 0x prefix is optional in every form.
func ParseI256Hex[T text](s T) (I256, error) {
	neg, signed, start := parseSign(s)
	if hasHexPrefix(s, start) {
		start += 2
	}
	u, reason := parseHexDigits(s, start)
	if reason != "" {
		return I256{}, formatErr("i256", s, reason)
	}
	return hexMagnitudeToI256(s, u, neg, signed || len(s)-start < 64)
}

func hexMagnitudeToI256[T text](s T, u U256, neg, magnitude bool) (I256, error) {
	if neg {
		if u.GreaterThan(minI256AsAbsU256) {
			return I256{}, overflowErr("i256", s)
		}
		return u.AsI256().Neg(), nil
	}
	if magnitude && u.hi&signBit != 0 {
		return I256{}, overflowErr("i256", s)
	}
	return u.AsI256(), nil
}

// ParseI256Decimal parses an optionally signed string of decimal digits in
// the range [MinI256, MaxI256].
func ParseI256Decimal[T text](s T) (I256, error) {
	neg, _, start := parseSign(s)
	u, reason, overflow := parseDecimalDigits(s, start)
	if overflow {
		return I256{}, overflowErr("i256", s)
	} else if reason != "" {
		return I256{}, formatErr("i256", s, reason)
	}
	return hexMagnitudeToI256(s, u, neg, true)
}

// ParseI256 parses hex if s has a 0x prefix after an optional sign, decimal
// otherwise.
func ParseI256[T text](s T) (I256, error) {
	_, _, start := parseSign(s)
	if hasHexPrefix(s, start) {
		return ParseI256Hex(s)
	}
	return ParseI256Decimal(s)
}

// ParseI256Fixed parses exactly 64 hex digits as raw two's complement, with
// an optional 0x prefix and no sign.
func ParseI256Fixed[T text](s T) (I256, error) {
	if _, signed, _ := parseSign(s); signed {
		return I256{}, formatErr("i256", s, reasonSign)
	}
	start := 0
	if hasHexPrefix(s, 0) {
		start = 2
	}
	if len(s)-start != 64 {
		return I256{}, formatErr("i256", s, reasonFixedLength)
	}
	u, reason := parseHexDigits(s, start)
	if reason != "" {
		return I256{}, formatErr("i256", s, reason)
	}
	return u.AsI256(), nil
}

// MustI256 parses s like ParseI256 and panics on error.
func MustI256(s string) I256 {
	i, err := ParseI256(s)
	if err != nil {
		panic(err)
	}
	return i
}
