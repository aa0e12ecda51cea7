package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/propagation"
	"google.golang.org/grpc/metadata"
)

// Propagator is the codec between an in-process trace context and the
// gRPC metadata carried on each call. It speaks W3C Trace Context plus
// Baggage, matching what the OTLP collector expects downstream.
type Propagator struct {
	tm propagation.TextMapPropagator
}

// NewPropagator creates a propagator. It is passed to the gateway (inject
// side) and the record service (extract side) at startup.
func NewPropagator() *Propagator {
	return &Propagator{
		tm: propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	}
}

// Inject serializes the active span context from ctx into md. Injection is
// best-effort: entries that would not survive as gRPC metadata are dropped
// rather than failing the call.
func (p *Propagator) Inject(ctx context.Context, md *metadata.MD) {
	p.tm.Inject(ctx, metadataCarrier{md: md})
}

// Extract reconstructs a trace context from md. When no recognized keys
// are present the returned context carries no remote parent and the
// receiver's span becomes a root.
func (p *Propagator) Extract(ctx context.Context, md metadata.MD) context.Context {
	return p.tm.Extract(ctx, metadataCarrier{md: &md})
}

// metadataCarrier adapts gRPC metadata to the otel TextMapCarrier.
type metadataCarrier struct {
	md *metadata.MD
}

func (c metadataCarrier) Get(key string) string {
	vals := c.md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (c metadataCarrier) Set(key, value string) {
	// Silently drop entries gRPC would reject; propagation must never
	// fail the request.
	if !validMetadataKey(key) || !validMetadataValue(value) {
		return
	}
	c.md.Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.md))
	for k := range *c.md {
		keys = append(keys, k)
	}
	return keys
}

// validMetadataKey reports whether key is legal as an ASCII gRPC metadata
// key: digits, letters, and -_. with no "grpc-" reserved prefix handling
// needed here since propagation keys never use it.
func validMetadataKey(key string) bool {
	if len(key) == 0 {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

// validMetadataValue reports whether value is printable ASCII, the only
// content allowed for non-binary metadata keys.
func validMetadataValue(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}
