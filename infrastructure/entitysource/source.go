// Package entitysource carrega o snapshot imutável de entidades consumido
// por toda a camada de derivação. A fonte é somente leitura: qualquer
// interação do usuário re-deriva visões, nunca escreve de volta.
package entitysource

import (
	_ "embed"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/internal/domain"
	"github.com/vfg2006/consultor-dashboard-api/pkg/utils"
)

//go:embed dataset.json
var defaultDataset []byte

// Snapshot é a fotografia imutável das coleções de entidades. O campo
// Version muda a cada carga e é usado como chave de memoização pelas camadas
// de derivação: resultados de uma versão antiga nunca são servidos.
type Snapshot struct {
	Version string

	Clients               []*domain.Client               `json:"clients"`
	Contracts             []*domain.Contract             `json:"contracts"`
	Withdrawals           []*domain.Withdrawal           `json:"withdrawals"`
	ConsultantWithdrawals []*domain.ConsultantWithdrawal `json:"consultantWithdrawals"`
	Consultants           []*domain.Consultant           `json:"consultants"`
	Profile               *domain.ConsultantProfile      `json:"consultantProfile"`
	LoggedConsultantID    int                            `json:"loggedConsultantId"`
}

// Source fornece o snapshot atual das entidades.
type Source interface {
	Snapshot() *Snapshot
}

// FileSource lê o dataset de um arquivo JSON, com fallback para o dataset
// embutido no binário quando nenhum caminho é configurado.
type FileSource struct {
	path string

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewFileSource cria a fonte e faz a carga inicial. Um caminho vazio usa o
// dataset embutido.
func NewFileSource(path string) (*FileSource, error) {
	source := &FileSource{path: path}

	if err := source.Reload(); err != nil {
		return nil, err
	}

	return source, nil
}

// Snapshot retorna o snapshot carregado mais recente.
func (s *FileSource) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// Reload recarrega o dataset e publica um novo snapshot com nova versão.
func (s *FileSource) Reload() error {
	raw := defaultDataset

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return errors.Wrapf(err, "erro ao ler dataset de entidades em %s", s.path)
		}
		raw = data
	}

	snapshot := &Snapshot{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, snapshot); err != nil {
		return errors.Wrap(err, "erro ao decodificar dataset de entidades")
	}

	version, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar versão do snapshot")
	}
	snapshot.Version = version

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"version":     snapshot.Version,
		"clients":     len(snapshot.Clients),
		"contracts":   len(snapshot.Contracts),
		"consultants": len(snapshot.Consultants),
	}).Info("Snapshot de entidades carregado")

	return nil
}
