// Package grpcproto the certstash.Registry service, generated from registry.proto,
// and conversions between its messages and stashdb records
package grpcproto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative registry.proto

import (
	"github.com/S0me0neR0man/certstash/internal/stashdb"
)

func RecordToCertificate(rec stashdb.Record) *NftCertificate {
	return &NftCertificate{
		Id:        rec.ID,
		Owner:     rec.Owner,
		Metadata:  rec.Metadata,
		CreatedAt: rec.CreatedAt,
	}
}

func CertificateToRecord(in *NftCertificate) stashdb.Record {
	return stashdb.Record{
		ID:        in.GetId(),
		Owner:     in.GetOwner(),
		Metadata:  in.GetMetadata(),
		CreatedAt: in.GetCreatedAt(),
	}
}
