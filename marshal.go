package num

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	msgpackPositive = 0x00
	msgpackNegative = 0xff
)

func (u U256) MarshalText() ([]byte, error) {
	return u.AppendDecimal(make([]byte, 0, MaxDecimalLen)), nil
}

// UnmarshalText accepts decimal, or hex with a 0x prefix.
func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU256(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON writes u as a quoted decimal string; JSON numbers lose
// precision above 2^53 in most decoders.
func (u U256) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, MaxDecimalLen+2)
	out = append(out, '"')
	out = u.AppendDecimal(out)
	return append(out, '"'), nil
}

// UnmarshalJSON accepts a bare decimal number or a quoted decimal or 0x hex
// string. null leaves u unchanged.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	bts, null, err := unquoteJSON("u256", bts)
	if err != nil || null {
		return err
	}
	v, err := ParseU256(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary writes the 32-byte big-endian form.
func (u U256) MarshalBinary() ([]byte, error) {
	b := u.Bytes32()
	return b[:], nil
}

func (u *U256) UnmarshalBinary(bts []byte) error {
	if len(bts) != 32 {
		return formatErr("u256", hexString(bts), reasonBinary)
	}
	*u = U256FromBytes32((*[32]byte)(bts))
	return nil
}

// EncodeMsgpack writes the minimal big-endian bytes of u as a msgpack bin.
func (u U256) EncodeMsgpack(enc *msgpack.Encoder) error {
	b := u.Bytes32()
	return enc.EncodeBytes(b[32-u.ByteCount():])
}

func (u *U256) DecodeMsgpack(dec *msgpack.Decoder) error {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	v, err := U256FromBytes(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (i I256) MarshalText() ([]byte, error) {
	return i.AppendDecimal(make([]byte, 0, MaxSignedDecimalLen)), nil
}

// UnmarshalText accepts signed decimal, or signed hex with a 0x prefix.
func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI256(bts)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I256) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, MaxSignedDecimalLen+2)
	out = append(out, '"')
	out = i.AppendDecimal(out)
	return append(out, '"'), nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	bts, null, err := unquoteJSON("i256", bts)
	if err != nil || null {
		return err
	}
	v, err := ParseI256(bts)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary writes the 32-byte big-endian two's complement form.
func (i I256) MarshalBinary() ([]byte, error) {
	b := i.Bytes32()
	return b[:], nil
}

func (i *I256) UnmarshalBinary(bts []byte) error {
	if len(bts) != 32 {
		return formatErr("i256", hexString(bts), reasonBinary)
	}
	*i = I256FromBytes32((*[32]byte)(bts))
	return nil
}

// EncodeMsgpack writes a sign marker byte, 0x00 or 0xff, followed by the
// minimal two's complement bytes of i. Zero is the marker alone.
func (i I256) EncodeMsgpack(enc *msgpack.Encoder) error {
	var buf [33]byte
	if i.IsNeg() {
		buf[0] = msgpackNegative
	}
	n := i.ByteCount()
	b := i.Bytes32()
	copy(buf[1:], b[32-n:])
	return enc.EncodeBytes(buf[:1+n])
}

// DecodeMsgpack reverses EncodeMsgpack; the bytes after the marker are
// extended with the marker.
func (i *I256) DecodeMsgpack(dec *msgpack.Decoder) error {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	if len(bts) == 0 || (bts[0] != msgpackPositive && bts[0] != msgpackNegative) {
		return formatErr("i256", hexString(bts), reasonMarker)
	}
	if len(bts) > 33 {
		return formatErr("i256", hexString(bts), reasonByteLength)
	}

	var buf [32]byte
	for j := range buf {
		buf[j] = bts[0]
	}
	copy(buf[32-(len(bts)-1):], bts[1:])
	*i = I256FromBytes32(&buf)
	return nil
}

func unquoteJSON(typ string, bts []byte) (out []byte, null bool, err error) {
	if string(bts) == "null" {
		return nil, true, nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, false, formatErr(typ, bts, reasonJSON)
		}
		bts = bts[1 : ln-1]
		if bytes.IndexByte(bts, '\\') >= 0 {
			return nil, false, formatErr(typ, bts, reasonJSON)
		}
	}
	return bts, false, nil
}
