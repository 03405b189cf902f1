// Package authservice integra com o serviço remoto de autenticação que
// conduz o fluxo de redefinição de senha. O núcleo da aplicação trata o
// serviço como opaco: apenas dispara a requisição e repassa a mensagem.
package authservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/consultor-dashboard-api/internal/config"
)

type Client interface {
	RequestPasswordReset(email string) (string, error)
	ConfirmPasswordReset(code, newPassword string) (string, error)
}

type AuthServiceClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AuthServiceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

// RequestPasswordReset solicita o envio do link de redefinição de senha.
func (c *AuthServiceClient) RequestPasswordReset(email string) (string, error) {
	payload := map[string]string{"email": email}
	return c.post("auth/forgot-password/consultant", payload)
}

// ConfirmPasswordReset redefine a senha usando o código recebido por e-mail.
func (c *AuthServiceClient) ConfirmPasswordReset(code, newPassword string) (string, error) {
	payload := map[string]string{
		"code":        code,
		"newPassword": newPassword,
	}
	return c.post("auth/reset-password/consultant", payload)
}

func (c *AuthServiceClient) post(path string, payload map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar requisição para o serviço de autenticação")
	}

	url := fmt.Sprintf("%s/%s", c.config.AuthService.URL, path)

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "erro ao chamar o serviço de autenticação: %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("serviço de autenticação retornou status %s para %s", resp.Status, path)
	}

	response := messageResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar resposta do serviço de autenticação")
	}

	return response.Message, nil
}
