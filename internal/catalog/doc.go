// Package catalog loads the item catalog the game deals from.
//
// The catalog is a newline-delimited JSON file with one item per line. Before
// items reach a deck they are cleaned: entries whose label or description
// give away their own year, entries described by century, known-bad entries
// and entries missing required fields are all dropped. The survivors are then
// split into the general and family pools.
package catalog
