// Package ranking ordena coleções derivadas e atribui posições densas. A
// mesma implementação serve clientes (por valor investido) e consultores
// (por vendas no ano), evitando divergência entre as fórmulas de posição.
package ranking

import "sort"

// Ranked associa um item à sua posição no ranking (base 1, sem lacunas).
type Ranked[T any] struct {
	Item T
	Rank int
}

// Rank ordena os itens pela chave em ordem decrescente e atribui posições
// densas começando em 1. A ordenação é estável: empates preservam a ordem
// original da coleção de entrada, que não é modificada.
func Rank[T any](items []T, key func(T) float64) []Ranked[T] {
	ranked := make([]Ranked[T], len(items))
	for i, item := range items {
		ranked[i] = Ranked[T]{Item: item}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i].Item) > key(ranked[j].Item)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// FindRank localiza um item no ranking pelo predicado informado.
func FindRank[T any](ranked []Ranked[T], match func(T) bool) (Ranked[T], bool) {
	for _, r := range ranked {
		if match(r.Item) {
			return r, true
		}
	}

	var zero Ranked[T]
	return zero, false
}

// IsInTopN indica se o item localizado pelo predicado está entre as n
// primeiras posições.
func IsInTopN[T any](ranked []Ranked[T], match func(T) bool, n int) bool {
	r, found := FindRank(ranked, match)
	return found && r.Rank <= n
}

// TopN retorna as n primeiras posições do ranking (ou todas, se houver
// menos itens).
func TopN[T any](ranked []Ranked[T], n int) []Ranked[T] {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
