package memory

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Region isolated part of the memory
type Region byte

const (
	CounterRegion Region = 0
	RecordRegion  Region = 1
)

func (r Region) String() string {
	switch r {
	case CounterRegion:
		return "counter"
	case RecordRegion:
		return "records"
	}
	return fmt.Sprintf("region(%d)", byte(r))
}

type CompareType int

const (
	KeyLessThan CompareType = -1
	KeyEqual    CompareType = 0
	KeyMoreThan CompareType = 1
)

// KeySize length of the encoded key
const KeySize = 9

// Key the synthetic unique key. All digits stored in BigEndian notation,
// so the byte order of keys is the numeric order of ids inside a region.
//
// [0] the region
//
// [1:9] the id uint64
type Key [KeySize]byte

// NewKey make new key
func NewKey(region Region, id uint64) Key {
	var k Key
	k[0] = byte(region)
	binary.BigEndian.PutUint64(k[1:9], id)
	return k
}

// KeyFromBytes parses a key written by Key.Bytes
func KeyFromBytes(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, fmt.Errorf("%w: key length %d", ErrCorrupt, len(b))
	}
	copy(k[:], b)
	return k, nil
}

func (k Key) Region() Region {
	return Region(k[0])
}

func (k Key) ID() uint64 {
	return binary.BigEndian.Uint64(k[1:9])
}

func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	copy(b, k[:])
	return b
}

// Compare the keys
func (k Key) Compare(other Key) CompareType {
	return CompareType(bytes.Compare(k[:], other[:]))
}

// String is Stringer implementation
func (k Key) String() string {
	return fmt.Sprintf("%s %s",
		hex.EncodeToString(k[0:1]),
		hex.EncodeToString(k[1:9]),
	)
}
