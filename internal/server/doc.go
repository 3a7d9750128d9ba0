// Package server runs the development API's HTTP transport.
//
// It owns startup, signal handling and graceful shutdown for the single
// HTTP listener the dev server exposes.
package server
