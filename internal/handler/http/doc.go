// Package http implements the HTTP transport of the validation service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression, body limits and integrity checks are
// handled here before requests reach the service layer.
package http
