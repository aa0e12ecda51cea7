// Package main is the entry point for the HTTP/JSON gateway.
//
// The gateway exposes the record service's CRUD operations over HTTP,
// forwarding each call to the gRPC backend. It starts a client span per
// request, injects the trace context into the outgoing call metadata,
// counts requests per logical method, and samples process resource usage
// on a fixed interval for the /metrics endpoint.
//
// Routes:
//
//	POST   /records       create a record
//	GET    /records       list records
//	GET    /records/:id   fetch one record
//	PUT    /records/:id   overwrite a record
//	DELETE /records/:id   idempotent delete
//	GET    /metrics       Prometheus exposition
//
// Usage:
//
//	./gateway -port 5000 -backend localhost:50051 -otlp localhost:4317
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
