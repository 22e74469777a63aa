package timeline

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildDeck(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		general  []domain.Item
		family   []domain.Item
		gap      int
		expected []string
	}{
		{
			name:     "family card after every four general cards",
			general:  numbered("g", 8, item),
			family:   numbered("f", 2, familyItem),
			gap:      4,
			expected: []string{"g1", "g2", "g3", "g4", "f1", "g5", "g6", "g7", "g8", "f2"},
		},
		{
			name:     "no family cards leaves general untouched",
			general:  numbered("g", 5, item),
			family:   nil,
			gap:      4,
			expected: []string{"g1", "g2", "g3", "g4", "g5"},
		},
		{
			name:     "no general cards leaves family untouched",
			general:  nil,
			family:   numbered("f", 3, familyItem),
			gap:      4,
			expected: []string{"f1", "f2", "f3"},
		},
		{
			name:     "general exhausted first",
			general:  numbered("g", 2, item),
			family:   numbered("f", 3, familyItem),
			gap:      4,
			expected: []string{"g1", "g2", "f1", "f2", "f3"},
		},
		{
			name:     "family exhausted first",
			general:  numbered("g", 5, item),
			family:   numbered("f", 1, familyItem),
			gap:      2,
			expected: []string{"g1", "g2", "f1", "g3", "g4", "g5"},
		},
		{
			name:     "gap of one alternates",
			general:  numbered("g", 3, item),
			family:   numbered("f", 3, familyItem),
			gap:      1,
			expected: []string{"g1", "f1", "g2", "f2", "g3", "f3"},
		},
		{
			name:     "both pools empty",
			gap:      4,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deck := buildDeck(tc.general, tc.family, tc.gap)
			assert.Equal(t, tc.expected, ids(deck))
		})
	}
}

func TestBuildDeckCoverage(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 7))

	for trial := 0; trial < 200; trial++ {
		general := numbered("g", 1+rng.IntN(30), item)
		family := numbered("f", 1+rng.IntN(30), familyItem)
		gap := 1 + rng.IntN(6)

		deck := buildDeck(general, family, gap)

		assert.Len(t, deck, len(general)+len(family))
		expected := append(ids(general), ids(family)...)
		assert.ElementsMatch(t, expected, ids(deck))

		// Order within each pool is preserved.
		var gotGeneral, gotFamily []string
		for _, it := range deck {
			if it.IsFamily() {
				gotFamily = append(gotFamily, it.ID)
			} else {
				gotGeneral = append(gotGeneral, it.ID)
			}
		}
		assert.Equal(t, ids(general), gotGeneral)
		assert.Equal(t, ids(family), gotFamily)
	}
}

func TestMinimumDistance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		played   int
		expected int
	}{
		{played: 0, expected: 110},
		{played: 1, expected: 100},
		{played: 5, expected: 60},
		{played: 10, expected: 10},
		{played: 11, expected: 5},
		{played: 25, expected: 5},
		{played: 39, expected: 5},
		{played: 40, expected: 1},
		{played: 500, expected: 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, minimumDistance(tc.played), "played count %d", tc.played)
	}
}

func TestTooClose(t *testing.T) {
	t.Parallel()
	played := []domain.Item{item("a", 1900), item("b", -500)}

	assert.True(t, tooClose(item("c", 1909), played, 10))
	assert.True(t, tooClose(item("c", 1891), played, 10))
	assert.False(t, tooClose(item("c", 1910), played, 10), "distance is exclusive")
	assert.True(t, tooClose(item("c", -505), played, 10), "a single close neighbour disqualifies")
	assert.False(t, tooClose(item("c", 1900), nil, 110), "nothing is close to an empty timeline")
}

func TestCheckPlacement(t *testing.T) {
	t.Parallel()
	played := []domain.Item{item("a", 1990), item("b", 2000)}
	drawn := item("c", 1995)

	testCases := []struct {
		name     string
		played   []domain.Item
		drawn    domain.Item
		index    int
		expected Placement
	}{
		{name: "correct slot", played: played, drawn: drawn, index: 1, expected: Placement{Correct: true}},
		{name: "guessed too early", played: played, drawn: drawn, index: 0, expected: Placement{Delta: 1}},
		{name: "guessed too late", played: played, drawn: drawn, index: 2, expected: Placement{Delta: -1}},
		{
			name:     "equal year sorts after played item",
			played:   []domain.Item{item("a", 2000)},
			drawn:    item("b", 2000),
			index:    1,
			expected: Placement{Correct: true},
		},
		{
			name:     "equal year before played item is wrong",
			played:   []domain.Item{item("a", 2000)},
			drawn:    item("b", 2000),
			index:    0,
			expected: Placement{Delta: 1},
		},
		{
			name:     "first card on empty timeline",
			played:   nil,
			drawn:    item("a", 1066),
			index:    0,
			expected: Placement{Correct: true},
		},
		{
			name:     "ancient year far from guess",
			played:   []domain.Item{item("a", -3000), item("b", 100), item("c", 1500), item("d", 1900)},
			drawn:    item("e", -50000),
			index:    4,
			expected: Placement{Delta: -4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, checkPlacement(tc.played, tc.drawn, tc.index))
		})
	}
}

func TestCorrectIndexMatchesStableSort(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(11, 3))

	for trial := 0; trial < 500; trial++ {
		played := make([]domain.Item, rng.IntN(15))
		for i := range played {
			played[i] = item(string(rune('a'+i)), 1900+rng.IntN(10))
		}
		slices.SortStableFunc(played, func(a, b domain.Item) int { return a.Year - b.Year })
		drawn := item("drawn", 1900+rng.IntN(10))

		sorted := append(slices.Clone(played), drawn)
		slices.SortStableFunc(sorted, func(a, b domain.Item) int { return a.Year - b.Year })
		expected := slices.IndexFunc(sorted, func(it domain.Item) bool { return it.ID == drawn.ID })

		assert.Equal(t, expected, correctIndex(played, drawn))
	}
}

func TestSelectNext(t *testing.T) {
	t.Parallel()

	ancient := item("ancient", 500)
	medieval := item("medieval", 1500)
	modernPerson := person("modern-person", 1900)
	modernEvent := item("modern-event", 1950)
	familyModern := familyItem("family-modern", 1900)
	mixed := []domain.Item{ancient, medieval, modernPerson, modernEvent, familyModern}

	testCases := []struct {
		name     string
		deck     []domain.Item
		played   []domain.Item
		floats   []float64
		ints     []int
		expected domain.Item
	}{
		{
			name:     "general pool, modern era, people allowed",
			deck:     mixed,
			floats:   []float64{0.9, 0.9},
			ints:     []int{2, 0},
			expected: modernPerson,
		},
		{
			name:     "people excluded",
			deck:     mixed,
			floats:   []float64{0.9, 0.1},
			ints:     []int{2, 0},
			expected: modernEvent,
		},
		{
			name:     "family pool preferred",
			deck:     mixed,
			floats:   []float64{0.1, 0.9},
			ints:     []int{2, 0},
			expected: familyModern,
		},
		{
			name:     "empty family pool falls back to general",
			deck:     []domain.Item{ancient, medieval},
			floats:   []float64{0.1, 0.9},
			ints:     []int{1, 0},
			expected: medieval,
		},
		{
			name:     "empty general pool falls back to family",
			deck:     []domain.Item{familyModern},
			floats:   []float64{0.9, 0.9},
			ints:     []int{2, 0},
			expected: familyModern,
		},
		{
			name:     "era window restricts candidates",
			deck:     mixed,
			floats:   []float64{0.9, 0.9},
			ints:     []int{0, 0},
			expected: ancient,
		},
		{
			name:     "spacing filter skips close years",
			deck:     mixed,
			played:   []domain.Item{item("played", 1850)},
			floats:   []float64{0.9, 0.9},
			ints:     []int{2, 0},
			expected: modernEvent,
		},
		{
			name:     "no candidates falls back to the whole deck",
			deck:     mixed,
			played:   []domain.Item{item("played", 1930)},
			floats:   []float64{0.9, 0.9},
			ints:     []int{2, 4},
			expected: familyModern,
		},
		{
			name:     "empty era falls back to the whole deck",
			deck:     []domain.Item{modernEvent, familyModern},
			floats:   []float64{0.9, 0.9},
			ints:     []int{0, 1},
			expected: familyModern,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := &scriptedRandom{floats: tc.floats, ints: tc.ints}
			got := selectNext(tc.deck, tc.played, NewDefaultParams(), rng)
			assert.Equal(t, tc.expected, got)
			assert.Empty(t, rng.floats, "every scripted float should be consumed")
			assert.Empty(t, rng.ints, "every scripted int should be consumed")
		})
	}
}

func TestSelectNextLateGameSpacing(t *testing.T) {
	t.Parallel()

	played := make([]domain.Item, 40)
	for i := range played {
		played[i] = item(string(rune('A'+i)), 1000+i*10)
	}
	// With 40 played items only an exact year match is too close.
	deck := []domain.Item{item("same", 1000), item("next", 1001)}

	rng := &scriptedRandom{floats: []float64{0.9, 0.9}, ints: []int{1, 0}}
	assert.Equal(t, "next", selectNext(deck, played, NewDefaultParams(), rng).ID)
}
