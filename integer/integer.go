// Package integer provides the zigzag binary layout for signed arbitrary
// precision integers.
//
// Integers are encoded big-endian with a trailing sign bit:
//
//  +1 = 0b0000_0010
//  -1 = 0b0000_0011
//
// Zero is always a single zero byte rather than an empty slice.
package integer

import (
	"encoding/binary"
	"math/big"
)

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i. A nil i is treated as zero.
func FromBig(i *big.Int) Block {
	if i == nil || i.Sign() == 0 {
		return Block{Value: []byte{0}}
	}

	return Block{
		Value:    new(big.Int).Abs(i).Bytes(),
		Negative: i.Sign() < 0,
	}
}

// Big returns the integer held by the block.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Append appends the length prefixed zigzag encoding of i to dst.
func Append(dst []byte, i *big.Int) []byte {
	// MarshalBinary never fails.
	data, _ := FromBig(i).MarshalBinary()

	dst = binary.AppendUvarint(dst, uint64(len(data)))

	return append(dst, data...)
}

// Read parses a length prefixed integer written by Append and returns it along
// with the unread remainder of data.
func Read(data []byte) (i *big.Int, rest []byte, err error) {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, Error.New("invalid size prefix")
	}
	data = data[n:]

	if size == 0 || size > uint64(len(data)) {
		return nil, nil, Error.New(
			"invalid size: size=%d available=%d",
			size,
			len(data),
		)
	}

	b := &Block{}

	err = b.UnmarshalBinary(data[:size])
	if err != nil {
		return nil, nil, err
	}

	return b.Big(), data[size:], nil
}
