// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between game clients and
// the game service, translating HTTP concerns to game operations.
package api
