package gateway

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/reelgate/reelgate/internal/logging"
	"github.com/reelgate/reelgate/internal/metrics"
	"github.com/reelgate/reelgate/internal/telemetry"
	pb "github.com/reelgate/reelgate/proto/record"
)

// Handlers translates HTTP/JSON to record service calls. Each handler
// decodes the body, counts the request, wraps the backend call in a
// client-kind span whose context travels on the outgoing metadata, and
// maps the RPC outcome back onto HTTP.
type Handlers struct {
	client     pb.RecordServiceClient
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	propagator *telemetry.Propagator
	logger     *logging.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(client pb.RecordServiceClient, m *metrics.Metrics, tracer trace.Tracer, propagator *telemetry.Propagator, logger *logging.Logger) *Handlers {
	return &Handlers{
		client:     client,
		metrics:    m,
		tracer:     tracer,
		propagator: propagator,
		logger:     logger,
	}
}

// recordInput is the boundary shape: id is optional, title and genre must
// be present. Nothing beyond presence is validated.
type recordInput struct {
	ID    string `json:"id"`
	Title string `json:"title" binding:"required"`
	Genre string `json:"genre" binding:"required"`
}

type recordResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`
}

// CreateRecord handles POST /records.
func (h *Handlers) CreateRecord(c *gin.Context) {
	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.IncRequests(metrics.MethodPost)

	ctx, span := h.tracer.Start(c.Request.Context(), "CreateRecord",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("component", "grpc"),
			attribute.String("record.title", input.Title),
			attribute.String("record.genre", input.Genre),
		))
	defer span.End()

	// The server assigns the id when the caller left it empty.
	resp, err := h.client.CreateRecord(h.outgoing(ctx), &pb.CreateRecordRequest{
		Record: &pb.Record{Id: input.ID, Title: input.Title, Genre: input.Genre},
	})
	h.completed(span, err)

	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(resp.GetRecord()))
}

// GetRecord handles GET /records/:id.
func (h *Handlers) GetRecord(c *gin.Context) {
	id := c.Param("id")

	h.metrics.IncRequests(metrics.MethodGet)

	ctx, span := h.tracer.Start(c.Request.Context(), "GetRecord",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("component", "grpc"),
			attribute.String("record.id", id),
		))
	defer span.End()

	resp, err := h.client.GetRecord(h.outgoing(ctx), &pb.GetRecordRequest{Id: id})
	h.completed(span, err)

	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(resp.GetRecord()))
}

// ListRecords handles GET /records.
func (h *Handlers) ListRecords(c *gin.Context) {
	h.metrics.IncRequests(metrics.MethodGet)

	ctx, span := h.tracer.Start(c.Request.Context(), "ListRecords",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("component", "grpc")))
	defer span.End()

	resp, err := h.client.ListRecords(h.outgoing(ctx), &pb.ListRecordsRequest{})
	if err != nil {
		h.completed(span, err)
		h.writeError(c, err)
		return
	}
	h.completed(span, nil,
		attribute.Int("record.count", len(resp.GetRecords())))

	out := make([]recordResponse, 0, len(resp.GetRecords()))
	for _, rec := range resp.GetRecords() {
		out = append(out, toResponse(rec))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateRecord handles PUT /records/:id. The path id wins over any id in
// the body.
func (h *Handlers) UpdateRecord(c *gin.Context) {
	id := c.Param("id")

	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.metrics.IncRequests(metrics.MethodPut)

	ctx, span := h.tracer.Start(c.Request.Context(), "UpdateRecord",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("component", "grpc"),
			attribute.String("record.id", id),
			attribute.String("record.title", input.Title),
			attribute.String("record.genre", input.Genre),
		))
	defer span.End()

	resp, err := h.client.UpdateRecord(h.outgoing(ctx), &pb.UpdateRecordRequest{
		Record: &pb.Record{Id: id, Title: input.Title, Genre: input.Genre},
	})
	h.completed(span, err)

	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(resp.GetRecord()))
}

// DeleteRecord handles DELETE /records/:id.
func (h *Handlers) DeleteRecord(c *gin.Context) {
	id := c.Param("id")

	h.metrics.IncRequests(metrics.MethodDelete)

	ctx, span := h.tracer.Start(c.Request.Context(), "DeleteRecord",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("component", "grpc"),
			attribute.String("record.id", id),
		))
	defer span.End()

	resp, err := h.client.DeleteRecord(h.outgoing(ctx), &pb.DeleteRecordRequest{Id: id})
	h.completed(span, err)

	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": resp.GetSuccess()})
}

// outgoing injects the active span context into fresh call metadata.
func (h *Handlers) outgoing(ctx context.Context) context.Context {
	md := metadata.MD{}
	h.propagator.Inject(ctx, &md)
	return metadata.NewOutgoingContext(ctx, md)
}

// completed records the completion event with the resulting RPC status.
func (h *Handlers) completed(span trace.Span, err error, extra ...attribute.KeyValue) {
	// Copy before appending so a caller-owned slice is never mutated.
	attrs := append(append([]attribute.KeyValue{}, extra...),
		attribute.String("status", status.Code(err).String()))
	span.AddEvent("request completed", trace.WithAttributes(attrs...))
}

// writeError maps an RPC failure onto the HTTP surface: NotFound becomes
// 404, everything else 500. The body always carries the upstream message.
func (h *Handlers) writeError(c *gin.Context, err error) {
	st, _ := status.FromError(err)
	code := http.StatusInternalServerError
	if st.Code() == codes.NotFound {
		code = http.StatusNotFound
	}
	h.logger.Debug("backend call failed",
		zap.String("code", st.Code().String()),
		zap.String("path", c.Request.URL.Path))
	c.JSON(code, gin.H{"error": st.Message()})
}

func toResponse(rec *pb.Record) recordResponse {
	return recordResponse{
		ID:    rec.GetId(),
		Title: rec.GetTitle(),
		Genre: rec.GetGenre(),
	}
}
