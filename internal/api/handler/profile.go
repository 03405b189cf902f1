package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/entitysource"
	"github.com/vfg2006/consultor-dashboard-api/pkg/apiErrors"
)

// GetProfile retorna o perfil do consultor logado: dados cadastrais, taxa de
// comissão e link de indicação. Somente leitura.
func GetProfile(source entitysource.Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := source.Snapshot().Profile
		if profile == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Perfil do consultor não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logrus.WithError(err).Error("Erro ao enviar perfil do consultor")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
