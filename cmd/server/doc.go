// Package main is the entry point for the record service backend.
//
// The server holds movie records in memory and exposes CRUD over gRPC.
// Each call carries W3C trace context in its metadata; the server joins
// the caller's trace and exports spans over OTLP.
//
// Architecture:
//
//	HTTP Gateway → Record Service (gRPC) → In-Memory Store
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -addr :50051 -otlp localhost:4317
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
