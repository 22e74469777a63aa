package timeline

import (
	"github.com/phrazzld/chrono-api/internal/domain"
)

// buildDeck interleaves the general and family pools into a single deck.
//
// Up to gap general items are dealt, followed by exactly one family item, until
// both pools are exhausted. Once the family pool runs out the remaining general
// items follow directly; once the general pool runs out the remaining family
// items follow one at a time. Order within each pool is preserved and the
// result holds every input item exactly once.
//
// Parameters:
//   - general: The general trivia pool, in deal order
//   - family: The family pool, in deal order
//   - gap: Number of general items per family item, at least 1
//
// Returns:
//   - A new slice of length len(general)+len(family)
func buildDeck(general, family []domain.Item, gap int) []domain.Item {
	deck := make([]domain.Item, 0, len(general)+len(family))
	g, f := 0, 0

	for g < len(general) || f < len(family) {
		for i := 0; i < gap && g < len(general); i++ {
			deck = append(deck, general[g])
			g++
		}
		if f < len(family) {
			deck = append(deck, family[f])
			f++
		}
	}

	return deck
}

// selectNext picks the next card to present from a non-empty deck.
//
// The draw consumes the random source in a fixed order so that a seeded source
// reproduces it exactly:
//  1. Float64: prefer the family pool with params.FamilyProbability, falling
//     back to the other pool when the preferred one is empty
//  2. IntN: pick one of params.Eras uniformly and keep items inside it
//  3. Float64: exclude people with params.AvoidPeopleProbability
//  4. IntN: pick uniformly among the survivors of the spacing filter, or
//     among the whole deck when no candidate survives
//
// The last step guarantees a card is always returned, however tight the
// filters get.
func selectNext(deck, played []domain.Item, params *Params, rng Random) domain.Item {
	family, general := splitByCategory(deck)

	preferred, other := general, family
	if rng.Float64() < params.FamilyProbability {
		preferred, other = family, general
	}
	if len(preferred) == 0 {
		preferred = other
	}

	era := params.Eras[rng.IntN(len(params.Eras))]
	avoidPeople := rng.Float64() < params.AvoidPeopleProbability
	distance := minimumDistance(len(played))

	candidates := make([]domain.Item, 0, len(preferred))
	for _, candidate := range preferred {
		if avoidPeople && candidate.IsHuman() {
			continue
		}
		if !era.Contains(candidate.Year) {
			continue
		}
		if tooClose(candidate, played, distance) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) > 0 {
		return candidates[rng.IntN(len(candidates))]
	}
	return deck[rng.IntN(len(deck))]
}

func splitByCategory(items []domain.Item) (family, general []domain.Item) {
	for _, item := range items {
		if item.IsFamily() {
			family = append(family, item)
		} else {
			general = append(general, item)
		}
	}
	return family, general
}

// minimumDistance returns how many years a candidate must keep from every
// played item, given how many items have been played so far.
func minimumDistance(playedCount int) int {
	switch {
	case playedCount < openingRounds:
		return openingDistance - openingStep*playedCount
	case playedCount < lateGameRounds:
		return midGameDistance
	default:
		return lateGameDistance
	}
}

// tooClose reports whether any played item lies within distance years of item.
func tooClose(item domain.Item, played []domain.Item, distance int) bool {
	for _, p := range played {
		if abs(item.Year-p.Year) < distance {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// correctIndex returns the slot drawn takes in a stable year sort of played
// followed by drawn. Because drawn comes last before sorting, it lands after
// every played item of the same year, so the slot is simply the number of
// played items whose year is not later than drawn's.
func correctIndex(played []domain.Item, drawn domain.Item) int {
	index := 0
	for _, p := range played {
		if p.Year <= drawn.Year {
			index++
		}
	}
	return index
}

// checkPlacement scores a guess against the correct slot. Delta is signed:
// positive when the guess was too early on the timeline, negative when too late.
func checkPlacement(played []domain.Item, drawn domain.Item, guessedIndex int) Placement {
	correct := correctIndex(played, drawn)
	if guessedIndex != correct {
		return Placement{Correct: false, Delta: correct - guessedIndex}
	}
	return Placement{Correct: true, Delta: 0}
}
