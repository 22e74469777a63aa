// Package store defines the persistence interfaces of the application and the
// errors every implementation reports. Implementations live under
// internal/platform.
package store
