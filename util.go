package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI256 returns the distance between a and b. The result is a U256
// because the distance between MinI256 and MaxI256 does not fit in an I256.
func DifferenceI256(a, b I256) U256 {
	if a.GreaterThan(b) {
		return a.AsU256().Sub(b.AsU256())
	}
	return b.AsU256().Sub(a.AsU256())
}

func LargerI256(a, b I256) I256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerI256(a, b I256) I256 {
	if b.LessThan(a) {
		return b
	}
	return a
}
