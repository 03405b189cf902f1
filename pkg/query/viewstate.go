package query

// ViewState guarda os parâmetros interativos de uma listagem: termo de
// busca, ordenação e página corrente. É o único estado mutável da interação;
// os agregados subjacentes nunca são recalculados por causa dele.
type ViewState struct {
	SearchTerm string
	Sort       SortSpec
	Page       int
}

// NewViewState cria o estado inicial de uma listagem na primeira página.
func NewViewState(defaultSort SortSpec) ViewState {
	return ViewState{
		Sort: defaultSort,
		Page: 1,
	}
}

// SetSearch troca o termo de busca e volta para a primeira página. O reset
// de página é comportamento obrigatório: a página anterior pode não existir
// no novo resultado.
func (v *ViewState) SetSearch(term string) {
	v.SearchTerm = term
	v.Page = 1
}

// SetSort troca a ordenação e volta para a primeira página.
func (v *ViewState) SetSort(spec SortSpec) {
	v.Sort = spec
	v.Page = 1
}

// ChangePage move a página corrente dentro de [1, totalPages].
func (v *ViewState) ChangePage(delta, totalPages int) {
	page := v.Page + delta
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	v.Page = page
}
