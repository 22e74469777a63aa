package timeline

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when selection parameters are out of range.
var ErrInvalidParams = errors.New("invalid timeline params")

// Era is a half-open window of years [From, Until) the selector can draw from.
type Era struct {
	From  int
	Until int
}

// Contains reports whether year falls inside the era.
func (e Era) Contains(year int) bool {
	return year >= e.From && year < e.Until
}

// Spacing between a candidate and every played year. The distance shrinks
// linearly over the opening rounds, then holds at the mid-game value until the
// late game. These breakpoints set the difficulty curve and must not drift.
const (
	openingDistance  = 110
	openingStep      = 10
	openingRounds    = 11
	midGameDistance  = 5
	lateGameRounds   = 40
	lateGameDistance = 1
)

// DefaultDeckGap is the number of general cards dealt between family cards.
const DefaultDeckGap = 4

// Params defines the tunable parameters of the card selector
type Params struct {
	// Chance of drawing from the family pool rather than the general pool
	FamilyProbability float64

	// Chance of excluding people from the candidate pool for a draw
	AvoidPeopleProbability float64

	// Year windows, one of which is picked uniformly per draw
	Eras []Era
}

// ParamsConfig allows overriding the default probabilities when creating a new Params instance
type ParamsConfig struct {
	FamilyProbability      float64
	AvoidPeopleProbability float64
}

// DefaultEras returns the three standard era windows: ancient to
// pre-industrial, pre-industrial to modern, and modern (2020 inclusive).
func DefaultEras() []Era {
	return []Era{
		{From: -100000, Until: 1000},
		{From: 1000, Until: 1800},
		{From: 1800, Until: 2021},
	}
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		FamilyProbability:      0.25, // 1 in 4 cards
		AvoidPeopleProbability: 0.5,
		Eras:                   DefaultEras(),
	}
}

// NewParams creates a new Params instance from the given probabilities and
// the default eras. A zero probability disables that branch entirely.
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()
	params.FamilyProbability = config.FamilyProbability
	params.AvoidPeopleProbability = config.AvoidPeopleProbability

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks that probabilities are in [0, 1] and every era is non-empty.
func (p *Params) Validate() error {
	if p.FamilyProbability < 0 || p.FamilyProbability > 1 {
		return fmt.Errorf("%w: family probability %v outside [0, 1]", ErrInvalidParams, p.FamilyProbability)
	}
	if p.AvoidPeopleProbability < 0 || p.AvoidPeopleProbability > 1 {
		return fmt.Errorf("%w: avoid people probability %v outside [0, 1]",
			ErrInvalidParams, p.AvoidPeopleProbability)
	}
	if len(p.Eras) == 0 {
		return fmt.Errorf("%w: at least one era is required", ErrInvalidParams)
	}
	for _, era := range p.Eras {
		if era.From >= era.Until {
			return fmt.Errorf("%w: era [%d, %d) is empty", ErrInvalidParams, era.From, era.Until)
		}
	}
	return nil
}
