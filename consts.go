package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU256 = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	MaxI256 = I256{hi: signMask, hm: maxUint64, lm: maxUint64, lo: maxUint64}
	MinI256 = I256{hi: signBit}

	zeroU256 U256
	zeroI256 I256

	oneI256      = I256{lo: 1}
	minusOneI256 = I256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	// minI256AsAbsU256 is |MinI256|, 1 << 255.
	minI256AsAbsU256 = U256{hi: signBit}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	minBigI256, _ = new(big.Int).SetString("-57896044618658097711785492504343953926634992332820282019728792003956564819968", 10)
	maxBigI256, _ = new(big.Int).SetString("57896044618658097711785492504343953926634992332820282019728792003956564819967", 10)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)
)
