/*
Package num provides fixed width 256-bit unsigned (U256) and signed (I256)
integers for blockchain values: balances, token amounts, storage words and
ABI arguments.

U256 and I256 are value types; all operations return new values. The hot
paths (add, sub, mul, division by a 64-bit divisor, parsing and formatting)
do not allocate.

Simple example:

	wei, _ := ParseU256Quantity("0xde0b6b3a7640000")
	fmt.Println(wei, wei.FormatUnits(18))
	// Output: 1000000000000000000 1

U256 and I256 can be created from a variety of sources:

	U256FromRaw(hi, hm, lm, lo uint64) U256
	U256From64(v uint64) U256
	U256FromBytes(b []byte) (U256, error)
	U256FromBytes32(b *[32]byte) U256
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	ParseU256Hex(s) (U256, error)
	ParseU256Decimal(s) (U256, error)
	ParseU256Quantity(s) (U256, error)
	ParseU256Fixed(s) (U256, error)

Arithmetic comes in three forms: Add, Sub and Mul wrap modulo 2^256 like
Go's own integers; AddOverflow, SubOverflow and MulOverflow also report
whether the result wrapped; AddChecked, SubChecked and MulChecked return
ErrOverflow instead. Quo, Rem and QuoRem panic on a zero divisor; the
Checked variants return ErrDivideByZero.

U256 and I256 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package num
