// Package gateway bridges HTTP/JSON requests to the record service RPC.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	pb "github.com/reelgate/reelgate/proto/record"
)

// Client wraps the shared gRPC connection to the record backend behind a
// circuit breaker. It implements pb.RecordServiceClient so handlers stay
// oblivious to the wrapping. The connection is safe for concurrent use by
// all gateway requests.
type Client struct {
	conn    *grpc.ClientConn
	rpc     pb.RecordServiceClient
	breaker *gobreaker.CircuitBreaker
}

var _ pb.RecordServiceClient = (*Client)(nil)

// Dial connects to the record backend.
func Dial(addr string) (*Client, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    60 * time.Second,
			Timeout: 20 * time.Second,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(4*1024*1024),
			grpc.MaxCallSendMsgSize(4*1024*1024),
		),
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial record backend: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "record-backend",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 &&
					float64(counts.TotalFailures)/float64(counts.Requests) > 0.5)
		},
		// Domain outcomes are not backend failures.
		IsSuccessful: func(err error) bool {
			switch status.Code(err) {
			case codes.OK, codes.NotFound, codes.InvalidArgument:
				return true
			}
			return false
		},
	})

	return &Client{
		conn:    conn,
		rpc:     pb.NewRecordServiceClient(conn),
		breaker: breaker,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) CreateRecord(ctx context.Context, req *pb.CreateRecordRequest, opts ...grpc.CallOption) (*pb.CreateRecordResponse, error) {
	resp, err := c.execute(func() (interface{}, error) {
		return c.rpc.CreateRecord(ctx, req, opts...)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*pb.CreateRecordResponse), nil
}

func (c *Client) GetRecord(ctx context.Context, req *pb.GetRecordRequest, opts ...grpc.CallOption) (*pb.GetRecordResponse, error) {
	resp, err := c.execute(func() (interface{}, error) {
		return c.rpc.GetRecord(ctx, req, opts...)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*pb.GetRecordResponse), nil
}

func (c *Client) ListRecords(ctx context.Context, req *pb.ListRecordsRequest, opts ...grpc.CallOption) (*pb.ListRecordsResponse, error) {
	resp, err := c.execute(func() (interface{}, error) {
		return c.rpc.ListRecords(ctx, req, opts...)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*pb.ListRecordsResponse), nil
}

func (c *Client) UpdateRecord(ctx context.Context, req *pb.UpdateRecordRequest, opts ...grpc.CallOption) (*pb.UpdateRecordResponse, error) {
	resp, err := c.execute(func() (interface{}, error) {
		return c.rpc.UpdateRecord(ctx, req, opts...)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*pb.UpdateRecordResponse), nil
}

func (c *Client) DeleteRecord(ctx context.Context, req *pb.DeleteRecordRequest, opts ...grpc.CallOption) (*pb.DeleteRecordResponse, error) {
	resp, err := c.execute(func() (interface{}, error) {
		return c.rpc.DeleteRecord(ctx, req, opts...)
	})
	if err != nil {
		return nil, err
	}
	return resp.(*pb.DeleteRecordResponse), nil
}

func (c *Client) execute(call func() (interface{}, error)) (interface{}, error) {
	resp, err := c.breaker.Execute(call)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, status.Error(codes.Unavailable, "record backend unavailable: circuit open")
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}
