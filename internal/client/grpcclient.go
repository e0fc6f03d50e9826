// Package client typed client of the certstash registry service
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/S0me0neR0man/certstash/internal/grpcproto"
	"github.com/S0me0neR0man/certstash/internal/registry"
	"github.com/S0me0neR0man/certstash/internal/stashdb"
	"github.com/S0me0neR0man/certstash/internal/token"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client grpcproto.RegistryClient
}

// NewGRPCClient caller is sent as the bearer token of every call.
// Extra options are appended, tests use them to dial over bufconn.
func NewGRPCClient(target string, caller string, extra ...grpc.DialOption) (*GRPCClient, error) {
	opts := []grpc.DialOption{
		grpc.WithPerRPCCredentials(token.NewStaticTokens(caller)),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		conn:   conn,
		client: grpcproto.NewRegistryClient(conn),
	}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Create(ctx context.Context, owner, metadata string) (stashdb.Record, error) {
	resp, err := c.client.CreateNft(ctx, &grpcproto.NftPayload{Owner: owner, Metadata: metadata})
	if err != nil {
		return stashdb.Record{}, fromStatus(err)
	}
	return grpcproto.CertificateToRecord(resp), nil
}

func (c *GRPCClient) Get(ctx context.Context, id uint64) (stashdb.Record, error) {
	resp, err := c.client.GetNft(ctx, &grpcproto.NftId{Id: id})
	if err != nil {
		return stashdb.Record{}, fromStatus(err)
	}
	return grpcproto.CertificateToRecord(resp), nil
}

func (c *GRPCClient) Delete(ctx context.Context, id uint64) (stashdb.Record, error) {
	resp, err := c.client.DeleteNft(ctx, &grpcproto.NftId{Id: id})
	if err != nil {
		return stashdb.Record{}, fromStatus(err)
	}
	return grpcproto.CertificateToRecord(resp), nil
}

// fromStatus restores the registry error kind from the status code,
// other codes (transport, deadline) are returned wrapped as is
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return &registry.Error{Kind: registry.ErrInvalidInput, Msg: st.Message(), Err: err}
	case codes.NotFound:
		return &registry.Error{Kind: registry.ErrNotFound, Msg: st.Message(), Err: err}
	case codes.Internal:
		return &registry.Error{Kind: registry.ErrStorage, Msg: st.Message(), Err: err}
	default:
		return fmt.Errorf("registry call: %w", err)
	}
}
