// Package events provides types and interfaces for publishing game lifecycle
// events.
//
// The game service emits an event when a game starts, after every placement,
// and when a game ends. Handlers subscribe through an EventEmitter without
// the service knowing who listens.
//
// The primary components are:
// - GameEvent: One lifecycle event with a JSON payload
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
