package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/eclisbank/solenbank/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 15 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates gateway clients (the telegram bot) against the
// configured secret hash and issues short-lived bearer tokens.
type Service struct {
	secretHash  string
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(secretHash string, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		secretHash:  secretHash,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Authenticate(_ context.Context, clientID, secret string) error {
	if clientID == "" || s.secretHash == "" {
		return ErrInvalidCredentials
	}
	if ok := s.hashService.CompareSecret(s.secretHash, secret); !ok {
		zap.L().Error("invalid gateway credentials", zap.String("client_id", clientID))
		return ErrInvalidCredentials
	}
	zap.L().Info("gateway client authenticated", zap.String("client_id", clientID))
	return nil
}

func (s *Service) GenerateToken(clientID string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(clientID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
