// Package memory provides in-process implementations of the store interfaces.
// Sessions live only as long as the server process.
package memory
