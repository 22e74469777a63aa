// Package timeline implements the card engine of the timeline game: dealing a
// deck from the general and family pools, choosing which card to present next,
// and scoring where the player placed it.
//
// All operations are pure functions of their inputs plus an injected Random
// source, so a seeded source reproduces a whole game exactly.
package timeline
