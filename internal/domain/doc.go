// Package domain contains the core entities of the timeline game: the catalog
// Item and the errors shared by the packages that deal, order and score items.
// It is independent of any storage or delivery mechanism.
package domain
