package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/internal/usecases/deriving"
	"github.com/vfg2006/consultor-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultor-dashboard-api/pkg/query"
)

// ClientListResponse é uma página da listagem de clientes derivados.
type ClientListResponse struct {
	Clients    []*domain.ClientStats `json:"clients"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
}

// contractRow adiciona ao contrato os campos derivados exibidos no detalhe.
type contractRow struct {
	*domain.Contract
	Profit              float64 `json:"profit"`
	MonthlyValorization float64 `json:"monthlyValorization"`
}

// ClientDetailResponse é o detalhe de um cliente com as abas de contratos e
// saques já filtradas e paginadas.
type ClientDetailResponse struct {
	Client *domain.ClientStats `json:"client"`

	Contracts       []contractRow        `json:"contracts"`
	ContractPages   int                  `json:"contractPages"`
	Withdrawals     []*domain.Withdrawal `json:"withdrawals"`
	WithdrawalPages int                  `json:"withdrawalPages"`
}

// ClientList lista os clientes com busca, ordenação e paginação. A busca
// cobre nome, CPF, e-mail e telefone; a ordem padrão é a do ranking por
// valor investido.
func ClientList(service deriving.Deriver, pageSize int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		page := parsePage(params.Get("page"))

		result := query.Run(service.ClientStats(), query.Options[*domain.ClientStats]{
			SearchTerm: params.Get("search"),
			Searchable: []func(*domain.ClientStats) string{
				func(c *domain.ClientStats) string { return c.Name },
				func(c *domain.ClientStats) string { return c.CPF },
				func(c *domain.ClientStats) string { return c.Email },
				func(c *domain.ClientStats) string { return c.Phone },
			},
			SortKeys: map[string]query.SortKey[*domain.ClientStats]{
				"invested":  {Numeric: func(c *domain.ClientStats) float64 { return c.TotalInvested }},
				"available": {Numeric: func(c *domain.ClientStats) float64 { return c.AvailableForWithdrawal }},
			},
			Sort: query.SortSpec{
				Key:       params.Get("sort"),
				Direction: params.Get("dir"),
			},
			Page:     page,
			PageSize: pageSize,
		})

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(ClientListResponse{
			Clients:    result.PageItems,
			Page:       page,
			TotalPages: result.TotalPages,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar listagem de clientes")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ClientDetail retorna o detalhe de um cliente. As abas de contratos e
// saques aceitam busca (por ID ou valor) e página independentes, via
// contractsSearch/contractsPage e withdrawalsSearch/withdrawalsPage.
func ClientDetail(service deriving.Deriver, pageSize int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de cliente inválido", nil)
			return
		}

		var client *domain.ClientStats
		for _, stats := range service.ClientStats() {
			if stats.Client.ID == id {
				client = stats
				break
			}
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Cliente não encontrado", nil)
			return
		}

		params := r.URL.Query()

		contracts := query.Run(client.Contracts, query.Options[*domain.Contract]{
			SearchTerm: params.Get("contractsSearch"),
			Searchable: []func(*domain.Contract) string{
				func(c *domain.Contract) string { return strconv.Itoa(c.ID) },
				func(c *domain.Contract) string { return strconv.FormatFloat(c.Value, 'f', -1, 64) },
			},
			Page:     parsePage(params.Get("contractsPage")),
			PageSize: pageSize,
		})

		withdrawals := query.Run(client.Withdrawals, query.Options[*domain.Withdrawal]{
			SearchTerm: params.Get("withdrawalsSearch"),
			Searchable: []func(*domain.Withdrawal) string{
				func(wd *domain.Withdrawal) string { return strconv.Itoa(wd.ID) },
				func(wd *domain.Withdrawal) string { return strconv.FormatFloat(wd.Value, 'f', -1, 64) },
			},
			Page:     parsePage(params.Get("withdrawalsPage")),
			PageSize: pageSize,
		})

		contractRows := make([]contractRow, 0, len(contracts.PageItems))
		for _, contract := range contracts.PageItems {
			contractRows = append(contractRows, contractRow{
				Contract:            contract,
				Profit:              contract.Profit(),
				MonthlyValorization: contract.MonthlyValorization(),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ClientDetailResponse{
			Client:          client,
			Contracts:       contractRows,
			ContractPages:   contracts.TotalPages,
			Withdrawals:     withdrawals.PageItems,
			WithdrawalPages: withdrawals.TotalPages,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao enviar detalhe do cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// parsePage interpreta o parâmetro de página; valores ausentes ou inválidos
// caem na primeira página.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
