// Package authenticating expõe a fronteira de autenticação: validação do
// token do consultor logado e o fluxo de redefinição de senha, conduzido por
// um serviço remoto. Falhas do serviço externo nunca derrubam a aplicação:
// viram uma mensagem genérica pedindo nova tentativa.
package authenticating

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultor-dashboard-api/infrastructure/integrator/authservice"
	"github.com/vfg2006/consultor-dashboard-api/internal/config"
)

// Mensagens genéricas exibidas quando o serviço remoto falha.
const (
	genericResetRequestError = "Ocorreu um erro ao tentar enviar o e-mail. Tente novamente."
	genericResetConfirmError = "Ocorreu um erro ao redefinir a senha. Tente novamente."
)

// Claims é o conteúdo do token do consultor logado.
type Claims struct {
	ConsultantID int    `json:"consultantId"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

type Authenticator interface {
	ValidateToken(tokenString string) (*Claims, error)
	RequestPasswordReset(email string) (string, error)
	ConfirmPasswordReset(code, newPassword string) (string, error)
}

type Service struct {
	cfg        *config.Config
	authClient authservice.Client
}

func NewService(cfg *config.Config, authClient authservice.Client) Authenticator {
	return &Service{
		cfg:        cfg,
		authClient: authClient,
	}
}

// ValidateToken valida o token JWT emitido pelo serviço de autenticação.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// RequestPasswordReset repassa a solicitação ao serviço remoto. O erro de
// transporte é registrado e substituído pela mensagem genérica.
func (s *Service) RequestPasswordReset(email string) (string, error) {
	message, err := s.authClient.RequestPasswordReset(email)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao solicitar redefinição de senha no serviço de autenticação")
		return "", errors.New(genericResetRequestError)
	}

	return message, nil
}

// ConfirmPasswordReset repassa a confirmação ao serviço remoto.
func (s *Service) ConfirmPasswordReset(code, newPassword string) (string, error) {
	message, err := s.authClient.ConfirmPasswordReset(code, newPassword)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao confirmar redefinição de senha no serviço de autenticação")
		return "", errors.New(genericResetConfirmError)
	}

	return message, nil
}
