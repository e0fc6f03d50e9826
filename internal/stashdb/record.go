package stashdb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxRecordSize upper bound of an encoded record
const MaxRecordSize = 1024

const (
	idField        protowire.Number = 1
	ownerField     protowire.Number = 2
	metadataField  protowire.Number = 3
	createdAtField protowire.Number = 4
)

var (
	ErrRecordTooLarge = errors.New("record too large")
	ErrBadRecord      = errors.New("bad record encoding")
)

// Record the NFT certificate
type Record struct {
	ID        uint64
	Owner     string
	Metadata  string
	CreatedAt uint64 // unix nanoseconds
}

func (r Record) String() string {
	return fmt.Sprintf("id=%d owner=%q metadata=%q created_at=%d", r.ID, r.Owner, r.Metadata, r.CreatedAt)
}

// EncodedSize the number of bytes MarshalRecord produces for r
func EncodedSize(r Record) int {
	return protowire.SizeTag(idField) + protowire.SizeVarint(r.ID) +
		protowire.SizeTag(ownerField) + protowire.SizeBytes(len(r.Owner)) +
		protowire.SizeTag(metadataField) + protowire.SizeBytes(len(r.Metadata)) +
		protowire.SizeTag(createdAtField) + protowire.SizeVarint(r.CreatedAt)
}

// MarshalRecord encodes r in protobuf wire format
func MarshalRecord(r Record) ([]byte, error) {
	if size := EncodedSize(r); size > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrRecordTooLarge, size, MaxRecordSize)
	}

	b := make([]byte, 0, EncodedSize(r))
	b = protowire.AppendTag(b, idField, protowire.VarintType)
	b = protowire.AppendVarint(b, r.ID)
	b = protowire.AppendTag(b, ownerField, protowire.BytesType)
	b = protowire.AppendString(b, r.Owner)
	b = protowire.AppendTag(b, metadataField, protowire.BytesType)
	b = protowire.AppendString(b, r.Metadata)
	b = protowire.AppendTag(b, createdAtField, protowire.VarintType)
	b = protowire.AppendVarint(b, r.CreatedAt)
	return b, nil
}

// UnmarshalRecord decodes a record, unknown fields are skipped
func UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, fmt.Errorf("%w: %v", ErrBadRecord, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == idField && typ == protowire.VarintType:
			r.ID, n = protowire.ConsumeVarint(b)
		case num == ownerField && typ == protowire.BytesType:
			r.Owner, n = protowire.ConsumeString(b)
		case num == metadataField && typ == protowire.BytesType:
			r.Metadata, n = protowire.ConsumeString(b)
		case num == createdAtField && typ == protowire.VarintType:
			r.CreatedAt, n = protowire.ConsumeVarint(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return Record{}, fmt.Errorf("%w: field %d: %v", ErrBadRecord, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return r, nil
}
