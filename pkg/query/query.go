// Package query implementa o pipeline genérico de busca, ordenação e
// paginação usado por todas as listagens derivadas. O pipeline nunca altera
// a coleção de entrada: produz apenas uma visão sobre os agregados já
// calculados.
package query

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Direções de ordenação aceitas pelo pipeline.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// SortSpec identifica a chave configurada e a direção da ordenação.
type SortSpec struct {
	Key       string
	Direction string
}

// SortKey compara itens pela chave: chaves de data comparam pelo instante
// interpretado, chaves numéricas pelo valor bruto. Exatamente um dos campos
// deve ser preenchido.
type SortKey[T any] struct {
	Numeric func(T) float64
	Date    func(T) time.Time
}

// Options configura uma execução do pipeline para uma coleção.
type Options[T any] struct {
	SearchTerm string
	Searchable []func(T) string
	SortKeys   map[string]SortKey[T]
	Sort       SortSpec
	Page       int
	PageSize   int
}

// Result é uma página da coleção filtrada. Uma busca sem resultados é um
// estado válido: TotalPages = 1 e página vazia, nunca um erro.
type Result[T any] struct {
	PageItems  []T
	TotalPages int
}

// Run filtra, ordena e pagina a coleção. O filtro mantém o item se qualquer
// campo pesquisável contiver o termo, sem diferenciar maiúsculas; termo
// vazio mantém todos. A ordenação é estável. A página solicitada não é
// ajustada aqui (o chamador mantém a página em [1, TotalPages]), mas uma
// página fora do intervalo resulta em página vazia, nunca em pânico.
func Run[T any](items []T, opts Options[T]) Result[T] {
	filtered := filter(items, opts.SearchTerm, opts.Searchable)

	if sortKey, ok := opts.SortKeys[opts.Sort.Key]; ok {
		sortItems(filtered, sortKey, opts.Sort.Direction)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = len(filtered)
	}

	totalPages := 1
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(len(filtered)) / float64(pageSize)))
		if totalPages < 1 {
			totalPages = 1
		}
	}

	start := (opts.Page - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return Result[T]{PageItems: []T{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result[T]{PageItems: filtered[start:end], TotalPages: totalPages}
}

func filter[T any](items []T, term string, searchable []func(T) string) []T {
	filtered := make([]T, 0, len(items))

	if term == "" || len(searchable) == 0 {
		return append(filtered, items...)
	}

	needle := strings.ToLower(term)
	for _, item := range items {
		for _, field := range searchable {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}

	return filtered
}

func sortItems[T any](items []T, key SortKey[T], direction string) {
	less := func(a, b T) bool { return false }

	switch {
	case key.Date != nil:
		less = func(a, b T) bool { return key.Date(a).Before(key.Date(b)) }
	case key.Numeric != nil:
		less = func(a, b T) bool { return key.Numeric(a) < key.Numeric(b) }
	}

	sort.SliceStable(items, func(i, j int) bool {
		if direction == DirectionDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
