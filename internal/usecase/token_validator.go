package usecase

import (
	"groupcart/internal/domain/user"
	"groupcart/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator keeps the handler layer off the concrete JWT service.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
