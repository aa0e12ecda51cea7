// Package record provides generated Protocol Buffer types and the gRPC
// client/server stubs for the record service.
//
// Generated from: proto/record.proto
//
// This package contains:
//   - Record: the wire representation of a movie record
//   - RecordServiceClient: gRPC client used by the gateway
//   - RecordServiceServer: interface implemented by internal/service
//   - Request/response wrappers for the five CRUD operations
//
// Services:
//   - CreateRecord: insert a record, assigning an id when none is given
//   - GetRecord: fetch one record by id
//   - ListRecords: snapshot of all records
//   - UpdateRecord: overwrite an existing record
//   - DeleteRecord: idempotent removal
//
// Note: This is generated code. Do not edit manually.
// Regenerate with: make proto
package record
