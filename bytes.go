package num

import (
	"encoding/binary"
	"encoding/hex"
	"io"
)

// U256FromBytes creates a U256 from up to 32 big-endian bytes. Shorter
// inputs are zero padded on the left, as an ABI decoder would see them.
func U256FromBytes(b []byte) (U256, error) {
	if len(b) > 32 {
		return U256{}, formatErr("u256", hexString(b), reasonByteLength)
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	return U256FromBytes32(&buf), nil
}

// U256FromBytesLE creates a U256 from up to 32 little-endian bytes. Shorter
// inputs are zero padded at the most significant end.
func U256FromBytesLE(b []byte) (U256, error) {
	if len(b) > 32 {
		return U256{}, formatErr("u256", hexString(b), reasonByteLength)
	}
	var buf [32]byte
	copy(buf[:], b)
	return U256{
		lo: binary.LittleEndian.Uint64(buf[0:]),
		lm: binary.LittleEndian.Uint64(buf[8:]),
		hm: binary.LittleEndian.Uint64(buf[16:]),
		hi: binary.LittleEndian.Uint64(buf[24:]),
	}, nil
}

func U256FromBytes32(b *[32]byte) U256 {
	return U256{
		hi: binary.BigEndian.Uint64(b[0:]),
		hm: binary.BigEndian.Uint64(b[8:]),
		lm: binary.BigEndian.Uint64(b[16:]),
		lo: binary.BigEndian.Uint64(b[24:]),
	}
}

// PutBytes writes u into the first 32 bytes of dst, big-endian. If dst is
// shorter than 32 bytes nothing is written and io.ErrShortBuffer is returned.
func (u U256) PutBytes(dst []byte) error {
	if len(dst) < 32 {
		return io.ErrShortBuffer
	}
	putLimbsBE(dst, u.hi, u.hm, u.lm, u.lo)
	return nil
}

// PutBytesLE is the little-endian counterpart of PutBytes.
func (u U256) PutBytesLE(dst []byte) error {
	if len(dst) < 32 {
		return io.ErrShortBuffer
	}
	putLimbsLE(dst, u.hi, u.hm, u.lm, u.lo)
	return nil
}

func (u U256) Bytes32() (out [32]byte) {
	putLimbsBE(out[:], u.hi, u.hm, u.lm, u.lo)
	return out
}

func (u U256) Bytes32LE() (out [32]byte) {
	putLimbsLE(out[:], u.hi, u.hm, u.lm, u.lo)
	return out
}

// Bytes returns the minimal big-endian encoding of u; empty for zero.
func (u U256) Bytes() []byte {
	b := u.Bytes32()
	out := make([]byte, u.ByteCount())
	copy(out, b[32-len(out):])
	return out
}

// ByteCount returns the number of bytes needed to hold u; 0 for zero.
func (u U256) ByteCount() int {
	return (u.BitLen() + 7) / 8
}

// I256FromBytes creates an I256 from up to 32 big-endian two's complement
// bytes. Shorter inputs are sign-extended from the first byte.
func I256FromBytes(b []byte) (I256, error) {
	if len(b) > 32 {
		return I256{}, formatErr("i256", hexString(b), reasonByteLength)
	}
	var buf [32]byte
	if len(b) > 0 && b[0]&0x80 != 0 {
		for i := 0; i < 32-len(b); i++ {
			buf[i] = 0xff
		}
	}
	copy(buf[32-len(b):], b)
	return I256FromBytes32(&buf), nil
}

// I256FromBytesLE creates an I256 from up to 32 little-endian two's
// complement bytes. Shorter inputs are sign-extended from the last byte.
func I256FromBytesLE(b []byte) (I256, error) {
	if len(b) > 32 {
		return I256{}, formatErr("i256", hexString(b), reasonByteLength)
	}
	var buf [32]byte
	if len(b) > 0 && b[len(b)-1]&0x80 != 0 {
		for i := len(b); i < 32; i++ {
			buf[i] = 0xff
		}
	}
	copy(buf[:], b)
	u, _ := U256FromBytesLE(buf[:])
	return u.AsI256(), nil
}

func I256FromBytes32(b *[32]byte) I256 {
	return U256FromBytes32(b).AsI256()
}

// PutBytes writes the two's complement form of i into the first 32 bytes of
// dst, big-endian.
func (i I256) PutBytes(dst []byte) error   { return i.AsU256().PutBytes(dst) }
func (i I256) PutBytesLE(dst []byte) error { return i.AsU256().PutBytesLE(dst) }
func (i I256) Bytes32() [32]byte           { return i.AsU256().Bytes32() }
func (i I256) Bytes32LE() [32]byte         { return i.AsU256().Bytes32LE() }

// ByteCount returns the smallest number of two's complement bytes that
// sign-extend back to i: 0 for zero, 1 for -1 and -128, 2 for 128.
func (i I256) ByteCount() int {
	if i.IsZero() {
		return 0
	}
	u := i.AsU256()
	if i.IsNeg() {
		u = u.Not()
	}
	return (u.BitLen() + 1 + 7) / 8
}

func putLimbsBE(dst []byte, hi, hm, lm, lo uint64) {
	_ = dst[31]
	binary.BigEndian.PutUint64(dst[0:], hi)
	binary.BigEndian.PutUint64(dst[8:], hm)
	binary.BigEndian.PutUint64(dst[16:], lm)
	binary.BigEndian.PutUint64(dst[24:], lo)
}

func putLimbsLE(dst []byte, hi, hm, lm, lo uint64) {
	_ = dst[31]
	binary.LittleEndian.PutUint64(dst[0:], lo)
	binary.LittleEndian.PutUint64(dst[8:], lm)
	binary.LittleEndian.PutUint64(dst[16:], hm)
	binary.LittleEndian.PutUint64(dst[24:], hi)
}

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
