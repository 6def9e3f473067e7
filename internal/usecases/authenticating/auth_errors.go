package authenticating

import "errors"

var (
	ErrInvalidToken     = errors.New("token inválido")
	ErrExpiredToken     = errors.New("token expirado")
	ErrSubjectRequired  = errors.New("identificação do cliente obrigatória")
	ErrInvalidRole      = errors.New("papel inválido")
	ErrSecretNotDefined = errors.New("segredo de autenticação não configurado")
)
