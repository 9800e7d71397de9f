package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	service := &JWTService{}

	token, err := service.GenerateJWT("tg-gateway", time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := &JWTService{}

	tests := []struct {
		name      string
		token     func() string
		expectErr bool
		clientID  string
	}{
		{
			name: "Valid token",
			token: func() string {
				token, err := service.GenerateJWT("tg-gateway", time.Now().Add(15*time.Minute))
				assert.NoError(t, err)
				return token
			},
			expectErr: false,
			clientID:  "tg-gateway",
		},
		{
			name: "Expired token",
			token: func() string {
				token, err := service.GenerateJWT("tg-gateway", time.Now().Add(-time.Minute))
				assert.NoError(t, err)
				return token
			},
			expectErr: true,
		},
		{
			name: "Empty client id",
			token: func() string {
				claims := Claims{
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
						Issuer:    "solenbank",
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
				assert.NoError(t, err)
				return token
			},
			expectErr: true,
		},
		{
			name: "Wrong issuer",
			token: func() string {
				claims := Claims{
					ClientID: "tg-gateway",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
						Issuer:    "someone-else",
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
				assert.NoError(t, err)
				return token
			},
			expectErr: true,
		},
		{
			name: "Garbage token",
			token: func() string {
				return "not-a-token"
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.clientID, claims.ClientID)
			}
		})
	}
}
