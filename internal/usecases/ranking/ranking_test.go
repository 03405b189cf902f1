package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type seller struct {
	Name  string
	Sales float64
}

func salesKey(s seller) float64 { return s.Sales }

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		items    []seller
		validate func(t *testing.T, ranked []Ranked[seller])
	}{
		{
			name: "Ordena do maior para o menor com posições densas",
			items: []seller{
				{Name: "Carlos", Sales: 300},
				{Name: "Ana", Sales: 900},
				{Name: "Bruno", Sales: 600},
			},
			validate: func(t *testing.T, ranked []Ranked[seller]) {
				assert.Len(t, ranked, 3)
				assert.Equal(t, "Ana", ranked[0].Item.Name)
				assert.Equal(t, 1, ranked[0].Rank)
				assert.Equal(t, "Bruno", ranked[1].Item.Name)
				assert.Equal(t, 2, ranked[1].Rank)
				assert.Equal(t, "Carlos", ranked[2].Item.Name)
				assert.Equal(t, 3, ranked[2].Rank)
			},
		},
		{
			name: "Empate preserva a ordem de entrada e posições distintas",
			items: []seller{
				{Name: "A", Sales: 500},
				{Name: "B", Sales: 500},
				{Name: "C", Sales: 300},
			},
			validate: func(t *testing.T, ranked []Ranked[seller]) {
				assert.Equal(t, "A", ranked[0].Item.Name)
				assert.Equal(t, 1, ranked[0].Rank)
				assert.Equal(t, "B", ranked[1].Item.Name)
				assert.Equal(t, 2, ranked[1].Rank)
				assert.Equal(t, "C", ranked[2].Item.Name)
				assert.Equal(t, 3, ranked[2].Rank)
			},
		},
		{
			name: "Valores zero também são ranqueados",
			items: []seller{
				{Name: "A", Sales: 0},
				{Name: "B", Sales: 100},
			},
			validate: func(t *testing.T, ranked []Ranked[seller]) {
				assert.Equal(t, "B", ranked[0].Item.Name)
				assert.Equal(t, "A", ranked[1].Item.Name)
				assert.Equal(t, 2, ranked[1].Rank)
			},
		},
		{
			name:  "Coleção vazia produz ranking vazio",
			items: []seller{},
			validate: func(t *testing.T, ranked []Ranked[seller]) {
				assert.Empty(t, ranked)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Rank(tt.items, salesKey))
		})
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	items := []seller{
		{Name: "Menor", Sales: 10},
		{Name: "Maior", Sales: 99},
	}

	Rank(items, salesKey)

	assert.Equal(t, "Menor", items[0].Name)
	assert.Equal(t, "Maior", items[1].Name)
}

func TestFindRank(t *testing.T) {
	ranked := Rank([]seller{
		{Name: "Ana", Sales: 900},
		{Name: "Bruno", Sales: 600},
	}, salesKey)

	entry, found := FindRank(ranked, func(s seller) bool { return s.Name == "Bruno" })
	assert.True(t, found)
	assert.Equal(t, 2, entry.Rank)

	_, found = FindRank(ranked, func(s seller) bool { return s.Name == "Zeca" })
	assert.False(t, found)
}

func TestIsInTopN(t *testing.T) {
	ranked := Rank([]seller{
		{Name: "Ana", Sales: 900},
		{Name: "Bruno", Sales: 600},
		{Name: "Carlos", Sales: 300},
	}, salesKey)

	assert.True(t, IsInTopN(ranked, func(s seller) bool { return s.Name == "Bruno" }, 2))
	assert.False(t, IsInTopN(ranked, func(s seller) bool { return s.Name == "Carlos" }, 2))
}

func TestTopN(t *testing.T) {
	ranked := Rank([]seller{
		{Name: "Ana", Sales: 900},
		{Name: "Bruno", Sales: 600},
	}, salesKey)

	top := TopN(ranked, 5)
	assert.Len(t, top, 2)

	top = TopN(ranked, 1)
	assert.Len(t, top, 1)
	assert.Equal(t, "Ana", top[0].Item.Name)
}
