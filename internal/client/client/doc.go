// Package client talks to the usermanager gRPC API.
//
// GRPCClient keeps the access token obtained by Login and attaches it to
// every later call through a unary interceptor. Status codes returned by the
// server are mapped to the sentinel errors in errors.go so callers can match
// them with errors.Is.
package client
