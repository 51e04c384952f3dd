package codec

import (
	"fmt"
	"math/big"

	"github.com/hasbyte1/go-crypto-utils/result"
)

var (
	numberToBytes = result.Wrap2(result.Encoding, packNumber)
	bytesToNumber = result.Wrap1(result.Encoding, unpackNumber)
)

// NumberToBytes packs v big-endian into exactly length bytes, left-padded
// with zeros.  It fails when v is negative, when length is negative, or when
// v does not fit in length bytes.
func NumberToBytes(v *big.Int, length int) result.Result[[]byte] {
	return numberToBytes(v, length)
}

// Uint64ToBytes is [NumberToBytes] for machine integers.
func Uint64ToBytes(v uint64, length int) result.Result[[]byte] {
	return numberToBytes(new(big.Int).SetUint64(v), length)
}

// BytesToNumber interprets b as an unsigned big-endian integer.  An empty
// slice yields zero.
func BytesToNumber(b []byte) result.Result[*big.Int] {
	return bytesToNumber(b)
}

func packNumber(v *big.Int, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLength, length)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w, got %s", ErrNegativeNumber, v)
	}
	if n := (v.BitLen() + 7) / 8; n > length {
		return nil, fmt.Errorf("%w: needs %d bytes, have %d", ErrNumberTooLarge, n, length)
	}
	return v.FillBytes(make([]byte, length)), nil
}

func unpackNumber(b []byte) (*big.Int, error) {
	return new(big.Int).SetBytes(b), nil
}
