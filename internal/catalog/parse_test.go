package catalog

import (
	"strings"
	"testing"

	"github.com/phrazzld/chrono-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := `{"id":"Q1","label":"Battle of Hastings","description":"battle in England","year":1066,"instance_of":["battle"],"image":"Bayeux.jpg"}

{"id":"Q2","label":"Ada Lovelace","description":"mathematician","year":1815,"instance_of":["human"],"wikipedia_title":"Ada_Lovelace"}
{"id":"F1","label":"Grandma's wedding","description":"","year":1962,"instance_of":[],"category":"family"}
`

	items, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, domain.Item{
		ID:          "Q1",
		Year:        1066,
		InstanceOf:  []string{"battle"},
		Label:       "Battle of Hastings",
		Description: "battle in England",
		Image:       "Bayeux.jpg",
	}, items[0])
	assert.True(t, items[1].IsHuman())
	assert.Equal(t, "Ada_Lovelace", items[1].WikipediaTitle)
	assert.True(t, items[2].IsFamily())
}

func TestParseNegativeYear(t *testing.T) {
	t.Parallel()

	items, err := Parse(strings.NewReader(`{"id":"Q3","label":"Lascaux paintings","year":-17000}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, -17000, items[0].Year)
}

func TestParseMalformedLine(t *testing.T) {
	t.Parallel()

	input := "{\"id\":\"Q1\",\"label\":\"ok\",\"year\":1}\n{not json}\n"
	_, err := Parse(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseRequiresYear(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "year key absent",
			input: `{"id":"Q1","label":"Thing","description":"d","instance_of":[]}`,
		},
		{
			name:  "year null",
			input: `{"id":"Q1","label":"Thing","year":null}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			input := "{\"id\":\"Q0\",\"label\":\"ok\",\"year\":5}\n" + tc.input + "\n"

			items, err := Parse(strings.NewReader(input))
			require.ErrorIs(t, err, ErrMalformedLine)
			assert.ErrorIs(t, err, ErrMissingYear)
			assert.Contains(t, err.Error(), "line 2")
			assert.Nil(t, items)
		})
	}
}

func TestParseYearZero(t *testing.T) {
	t.Parallel()

	items, err := Parse(strings.NewReader(`{"id":"Q4","label":"Start of the common era","year":0}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Year)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	items, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}
