package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSecret(t *testing.T) {
	service := &HashService{}

	tests := []struct {
		name      string
		secret    string
		expectErr bool
	}{
		{
			name:      "Valid secret",
			secret:    "gateway-secret",
			expectErr: false,
		},
		{
			name:      "Empty secret",
			secret:    "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := service.HashSecret(tt.secret)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.secret, hash)
		})
	}
}

func TestCompareSecret(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashSecret("gateway-secret")
	assert.NoError(t, err)

	assert.True(t, service.CompareSecret(hash, "gateway-secret"))
	assert.False(t, service.CompareSecret(hash, "wrong-secret"))
	assert.False(t, service.CompareSecret("not-a-hash", "gateway-secret"))
}
