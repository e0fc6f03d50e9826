// Package server gRPC front of the registry service
package server

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/S0me0neR0man/certstash/internal/config"
	"github.com/S0me0neR0man/certstash/internal/grpcproto"
	"github.com/S0me0neR0man/certstash/internal/memory"
	"github.com/S0me0neR0man/certstash/internal/registry"
	"github.com/S0me0neR0man/certstash/internal/token"
)

type GRPCServer struct {
	grpcproto.UnimplementedRegistryServer

	svc     *registry.Service
	flusher memory.Flusher // nil when the backend writes through
	sugar   *zap.SugaredLogger
	gserv   *grpc.Server
	conf    *config.Config
}

// NewRegistryServer flusher may be nil
func NewRegistryServer(svc *registry.Service, flusher memory.Flusher, conf *config.Config, logger *zap.Logger) *GRPCServer {
	ss := &GRPCServer{
		svc:     svc,
		flusher: flusher,
		conf:    conf,
		sugar:   logger.Sugar(),
	}
	ss.gserv = grpc.NewServer(grpc.UnaryInterceptor(ss.logRequest))
	grpcproto.RegisterRegistryServer(ss.gserv, ss)
	return ss
}

// Run listens on the configured address and serves until ctx is done
func (ss *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", ss.conf.Address)
	if err != nil {
		return err
	}
	return ss.Serve(ctx, lis)
}

// Serve blocks until ctx is done, then stops gracefully and flushes
// buffered writes one last time
func (ss *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ss.sugar.Infow("grpc server start", "address", lis.Addr().String())
		if err := ss.gserv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		ss.saveToDisk(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		ss.gserv.GracefulStop()
		ss.sugar.Infow("grpc server stopped")
		return nil
	})

	err := g.Wait()
	if ferr := ss.flush(context.Background()); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func (ss *GRPCServer) saveToDisk(ctx context.Context) {
	if ss.flusher == nil || ss.conf.StoreInterval == 0 {
		return
	}

	ticker := time.NewTicker(ss.conf.StoreInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := ss.flush(ctx); err != nil && ctx.Err() == nil {
				ss.sugar.Errorw("flush", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (ss *GRPCServer) flush(ctx context.Context) error {
	if ss.flusher == nil {
		return nil
	}
	return ss.flusher.Flush(ctx)
}

// logRequest the caller token is informational, requests are never rejected for it
func (ss *GRPCServer) logRequest(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	requestID := uuid.New().String()

	var caller string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		// keys within metadata.MD are normalized to lowercase
		if v := md.Get(token.AuthorizationKey); len(v) > 0 {
			caller = v[0]
		}
	}

	resp, err := handler(ctx, req)

	ss.sugar.Debugw("request",
		"request_id", requestID,
		"method", info.FullMethod,
		"caller", caller,
		"duration", time.Since(start),
		"code", status.Code(err).String(),
	)
	return resp, err
}

func (ss *GRPCServer) CreateNft(ctx context.Context, in *grpcproto.NftPayload) (*grpcproto.NftCertificate, error) {
	rec, err := ss.svc.Create(ctx, in.GetOwner(), in.GetMetadata())
	if err != nil {
		return nil, ss.toStatus(err)
	}
	return grpcproto.RecordToCertificate(rec), nil
}

func (ss *GRPCServer) GetNft(ctx context.Context, in *grpcproto.NftId) (*grpcproto.NftCertificate, error) {
	rec, err := ss.svc.Get(ctx, in.GetId())
	if err != nil {
		return nil, ss.toStatus(err)
	}
	return grpcproto.RecordToCertificate(rec), nil
}

func (ss *GRPCServer) DeleteNft(ctx context.Context, in *grpcproto.NftId) (*grpcproto.NftCertificate, error) {
	rec, err := ss.svc.Delete(ctx, in.GetId())
	if err != nil {
		return nil, ss.toStatus(err)
	}
	return grpcproto.RecordToCertificate(rec), nil
}

func (ss *GRPCServer) toStatus(err error) error {
	var rerr *registry.Error
	if !errors.As(err, &rerr) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return status.FromContextError(err).Err()
		}
		ss.sugar.Errorw("unexpected service error", "error", err)
		return status.Error(codes.Internal, err.Error())
	}

	switch {
	case errors.Is(rerr, registry.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, rerr.Msg)
	case errors.Is(rerr, registry.ErrNotFound):
		return status.Error(codes.NotFound, rerr.Msg)
	default:
		ss.sugar.Errorw("storage", "error", rerr.Err)
		return status.Error(codes.Internal, rerr.Msg)
	}
}
