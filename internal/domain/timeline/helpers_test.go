package timeline

import (
	"fmt"

	"github.com/phrazzld/chrono-api/internal/domain"
)

// scriptedRandom replays fixed values so each branch of the selector can be
// driven explicitly. It panics when a script runs out or an int is out of range.
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted int %d outside [0, %d)", v, n))
	}
	return v
}

func item(id string, year int) domain.Item {
	return domain.Item{ID: id, Label: id, Year: year}
}

func familyItem(id string, year int) domain.Item {
	return domain.Item{ID: id, Label: id, Year: year, Category: domain.CategoryFamily}
}

func person(id string, year int) domain.Item {
	return domain.Item{ID: id, Label: id, Year: year, InstanceOf: []string{domain.InstanceHuman}}
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func numbered(prefix string, n int, factory func(string, int) domain.Item) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = factory(fmt.Sprintf("%s%d", prefix, i+1), 1900+i)
	}
	return items
}
