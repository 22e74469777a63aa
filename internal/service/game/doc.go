// Package game runs timeline game sessions on top of the timeline engine.
//
// A session deals one card onto the timeline at the start, then repeatedly
// presents a drawn card for the player to place. Every placement, right or
// wrong, moves the drawn card into its chronological slot. Wrong placements
// cost a life; the game ends when lives run out or the deck is exhausted.
package game
