package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/store"
	"github.com/reelgate/reelgate/internal/telemetry"
	pb "github.com/reelgate/reelgate/proto/record"
)

type fixture struct {
	svc      *Service
	store    *store.Memory
	tracer   trace.Tracer
	prop     *telemetry.Propagator
	recorder *tracetest.SpanRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	st := store.NewMemory()
	tracer := tp.Tracer("record-service")
	prop := telemetry.NewPropagator()

	return &fixture{
		svc:      New(st, tracer, prop, logging.NewDefault()),
		store:    st,
		tracer:   tracer,
		prop:     prop,
		recorder: recorder,
	}
}

func TestCreateRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
		Record: &pb.Record{Title: "Dune", Genre: "Sci-Fi"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.GetRecord().GetId(), "server must assign an id")
	assert.Equal(t, "Dune", created.GetRecord().GetTitle())
	assert.Equal(t, "Sci-Fi", created.GetRecord().GetGenre())

	got, err := f.svc.GetRecord(ctx, &pb.GetRecordRequest{Id: created.GetRecord().GetId()})
	require.NoError(t, err)
	assert.Equal(t, created.GetRecord().GetId(), got.GetRecord().GetId())
	assert.Equal(t, "Dune", got.GetRecord().GetTitle())
	assert.Equal(t, "Sci-Fi", got.GetRecord().GetGenre())
}

func TestCreateKeepsCallerID(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.CreateRecord(context.Background(), &pb.CreateRecordRequest{
		Record: &pb.Record{Id: "m42", Title: "Stalker", Genre: "Sci-Fi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "m42", created.GetRecord().GetId())
}

func TestCreateNoPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRecord(context.Background(), &pb.CreateRecordRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetRecord(context.Background(), &pb.GetRecordRequest{Id: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestListReturnsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.ListRecords(ctx, &pb.ListRecordsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.GetRecords(), "empty store lists zero records")

	ids := map[string]bool{"a": false, "b": false, "c": false}
	for id := range ids {
		_, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
			Record: &pb.Record{Id: id, Title: "t-" + id},
		})
		require.NoError(t, err)
	}

	resp, err = f.svc.ListRecords(ctx, &pb.ListRecordsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetRecords(), len(ids))
	for _, rec := range resp.GetRecords() {
		seen, known := ids[rec.GetId()]
		require.True(t, known, "unexpected id %q", rec.GetId())
		require.False(t, seen, "duplicate id %q", rec.GetId())
		ids[rec.GetId()] = true
	}
}

func TestUpdateNeverCreates(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateRecord(context.Background(), &pb.UpdateRecordRequest{
		Record: &pb.Record{Id: "ghost", Title: "Phantom"},
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, 0, f.store.Len(), "failed update must leave the store unchanged")
}

func TestUpdateAfterDeleteStaysDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
		Record: &pb.Record{Id: "m1", Title: "Dune", Genre: "Sci-Fi"},
	})
	require.NoError(t, err)

	deleted, err := f.svc.DeleteRecord(ctx, &pb.DeleteRecordRequest{Id: "m1"})
	require.NoError(t, err)
	require.True(t, deleted.GetSuccess())

	// A successful delete must not be undone by a later update, even one
	// carrying the record that was just removed.
	_, err = f.svc.UpdateRecord(ctx, &pb.UpdateRecordRequest{
		Record: created.GetRecord(),
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, 0, f.store.Len(), "update must not resurrect a deleted record")
}

func TestUpdateNoPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateRecord(context.Background(), &pb.UpdateRecordRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
		Record: &pb.Record{Id: "m1", Title: "Alien", Genre: "Horror"},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateRecord(ctx, &pb.UpdateRecordRequest{
		Record: &pb.Record{Id: "m1", Title: "Aliens", Genre: "Action"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Aliens", updated.GetRecord().GetTitle())

	got, err := f.svc.GetRecord(ctx, &pb.GetRecordRequest{Id: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "Aliens", got.GetRecord().GetTitle())
	assert.Equal(t, "Action", got.GetRecord().GetGenre())
}

func TestDeleteIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
		Record: &pb.Record{Id: "m1", Title: "Heat"},
	})
	require.NoError(t, err)

	resp, err := f.svc.DeleteRecord(ctx, &pb.DeleteRecordRequest{Id: "m1"})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())

	// Deleting an absent id succeeds at the RPC level and reports false.
	resp, err = f.svc.DeleteRecord(ctx, &pb.DeleteRecordRequest{Id: "m1"})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
}

func TestTraceContinuity(t *testing.T) {
	f := newFixture(t)

	// Simulate the gateway: client span injected into call metadata.
	clientCtx, clientSpan := f.tracer.Start(context.Background(), "CreateRecord",
		trace.WithSpanKind(trace.SpanKindClient))
	md := metadata.MD{}
	f.prop.Inject(clientCtx, &md)
	clientSpan.End()

	ctx := metadata.NewIncomingContext(context.Background(), md)
	_, err := f.svc.CreateRecord(ctx, &pb.CreateRecordRequest{
		Record: &pb.Record{Title: "Dune", Genre: "Sci-Fi"},
	})
	require.NoError(t, err)

	var server sdktrace.ReadOnlySpan
	for _, span := range f.recorder.Ended() {
		if span.SpanKind() == trace.SpanKindServer {
			server = span
		}
	}
	require.NotNil(t, server, "service must record a server span")
	assert.Equal(t, clientSpan.SpanContext().TraceID(), server.SpanContext().TraceID(),
		"server span must continue the gateway's trace")
	assert.Equal(t, clientSpan.SpanContext().SpanID(), server.Parent().SpanID(),
		"server span must be a child of the injected span")
}

func TestNoParentMakesRootSpan(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListRecords(context.Background(), &pb.ListRecordsRequest{})
	require.NoError(t, err)

	spans := f.recorder.Ended()
	require.NotEmpty(t, spans)
	assert.False(t, spans[len(spans)-1].Parent().IsValid())
}

// failingStore surfaces storage failures so the Internal mapping stays
// exercised even though the in-memory store cannot produce them.
type failingStore struct{ err error }

func (f *failingStore) Put(context.Context, store.Record) error { return f.err }
func (f *failingStore) Get(context.Context, string) (store.Record, error) {
	return store.Record{}, f.err
}
func (f *failingStore) Replace(context.Context, store.Record) (bool, error) {
	return false, f.err
}
func (f *failingStore) List(context.Context) ([]store.Record, error) { return nil, f.err }
func (f *failingStore) Delete(context.Context, string) (bool, error) { return false, f.err }

func TestStoreFailureMapsToInternal(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })

	svc := New(&failingStore{err: errors.New("lock error")},
		tp.Tracer("record-service"), telemetry.NewPropagator(), logging.NewDefault())

	_, err := svc.CreateRecord(context.Background(), &pb.CreateRecordRequest{
		Record: &pb.Record{Title: "Dune"},
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.ListRecords(context.Background(), &pb.ListRecordsRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}
