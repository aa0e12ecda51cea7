// Package service implements the RecordService gRPC server over the store.
//
// Every handler extracts the caller's trace context from the incoming
// metadata, runs under a server-kind span, and translates store outcomes
// into gRPC status codes.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/store"
	"github.com/reelgate/reelgate/internal/telemetry"
	pb "github.com/reelgate/reelgate/proto/record"
)

// Service is the RPC facade over the record store.
type Service struct {
	pb.UnimplementedRecordServiceServer

	store      store.Store
	tracer     trace.Tracer
	propagator *telemetry.Propagator
	logger     *logging.Logger
}

// New creates a record service. Tracer and propagator are injected at
// startup; the service never consults process-wide telemetry state.
func New(st store.Store, tracer trace.Tracer, propagator *telemetry.Propagator, logger *logging.Logger) *Service {
	return &Service{
		store:      st,
		tracer:     tracer,
		propagator: propagator,
		logger:     logger,
	}
}

// CreateRecord stores a record, assigning a fresh id when the caller
// supplied none, and returns the stored value.
func (s *Service) CreateRecord(ctx context.Context, req *pb.CreateRecordRequest) (*pb.CreateRecordResponse, error) {
	ctx, span := s.startSpan(ctx, "CreateRecord")
	defer span.End()

	if req.GetRecord() == nil {
		return nil, s.fail(span, status.Error(codes.InvalidArgument, "no record provided"))
	}

	rec := fromProto(req.GetRecord())
	if rec.ID == "" {
		// Collisions in the uuid space are treated as negligible;
		// a hit silently overwrites (last-write-wins).
		rec.ID = uuid.NewString()
		span.AddEvent("generated record id",
			trace.WithAttributes(attribute.String("record.id", rec.ID)))
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return nil, s.fail(span, toStatus(err))
	}

	s.logger.Debug("record created", zap.String("id", rec.ID))
	s.complete(span, attribute.String("record.id", rec.ID))
	return &pb.CreateRecordResponse{Record: toProto(rec)}, nil
}

// GetRecord returns the stored record for the requested id.
func (s *Service) GetRecord(ctx context.Context, req *pb.GetRecordRequest) (*pb.GetRecordResponse, error) {
	ctx, span := s.startSpan(ctx, "GetRecord")
	defer span.End()

	rec, err := s.store.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(span, toStatus(err))
	}

	s.complete(span, attribute.String("record.id", rec.ID))
	return &pb.GetRecordResponse{Record: toProto(rec)}, nil
}

// ListRecords returns a snapshot of all records. Order is unspecified.
func (s *Service) ListRecords(ctx context.Context, _ *pb.ListRecordsRequest) (*pb.ListRecordsResponse, error) {
	ctx, span := s.startSpan(ctx, "ListRecords")
	defer span.End()

	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, s.fail(span, toStatus(err))
	}

	out := make([]*pb.Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toProto(rec))
	}

	s.complete(span, attribute.Int("record.count", len(out)))
	return &pb.ListRecordsResponse{Records: out}, nil
}

// UpdateRecord overwrites an existing record. Update never creates.
func (s *Service) UpdateRecord(ctx context.Context, req *pb.UpdateRecordRequest) (*pb.UpdateRecordResponse, error) {
	ctx, span := s.startSpan(ctx, "UpdateRecord")
	defer span.End()

	if req.GetRecord() == nil {
		return nil, s.fail(span, status.Error(codes.InvalidArgument, "no record provided"))
	}

	rec := fromProto(req.GetRecord())
	replaced, err := s.store.Replace(ctx, rec)
	if err != nil {
		return nil, s.fail(span, toStatus(err))
	}
	if !replaced {
		return nil, s.fail(span, toStatus(store.ErrNotFound))
	}

	s.logger.Debug("record updated", zap.String("id", rec.ID))
	s.complete(span, attribute.String("record.id", rec.ID))
	return &pb.UpdateRecordResponse{Record: toProto(rec)}, nil
}

// DeleteRecord removes a record if present. It succeeds either way and
// reports whether anything was removed.
func (s *Service) DeleteRecord(ctx context.Context, req *pb.DeleteRecordRequest) (*pb.DeleteRecordResponse, error) {
	ctx, span := s.startSpan(ctx, "DeleteRecord")
	defer span.End()

	removed, err := s.store.Delete(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(span, toStatus(err))
	}

	s.logger.Debug("record delete", zap.String("id", req.GetId()), zap.Bool("removed", removed))
	s.complete(span,
		attribute.String("record.id", req.GetId()),
		attribute.Bool("record.removed", removed))
	return &pb.DeleteRecordResponse{Success: removed}, nil
}

// startSpan extracts the inbound trace context, if any, and starts a
// server-kind span. Without a parent the span becomes a new root.
func (s *Service) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		ctx = s.propagator.Extract(ctx, md)
	}
	return s.tracer.Start(ctx, op, trace.WithSpanKind(trace.SpanKindServer))
}

// complete attaches the structured completion event for the OK path.
func (s *Service) complete(span trace.Span, attrs ...attribute.KeyValue) {
	// Copy before appending so a caller-owned slice is never mutated.
	attrs = append(append([]attribute.KeyValue{}, attrs...),
		attribute.String("status", codes.OK.String()))
	span.AddEvent("request completed", trace.WithAttributes(attrs...))
}

// fail records the error on the span and returns it unchanged.
func (s *Service) fail(span trace.Span, err error) error {
	st, _ := status.FromError(err)
	span.AddEvent("request completed",
		trace.WithAttributes(attribute.String("status", st.Code().String())))
	span.SetStatus(otelcodes.Error, st.Message())
	return err
}

// toStatus translates store errors into gRPC statuses. Domain conditions
// map to their codes; anything unrecognized is internal.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "record not found")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func fromProto(r *pb.Record) store.Record {
	return store.Record{
		ID:    r.GetId(),
		Title: r.GetTitle(),
		Genre: r.GetGenre(),
	}
}

func toProto(r store.Record) *pb.Record {
	return &pb.Record{
		Id:    r.ID,
		Title: r.Title,
		Genre: r.Genre,
	}
}
