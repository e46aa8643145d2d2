//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"webhooknest/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("生成したトークンを検証できる", func(t *testing.T) {
		token, err := service.GenerateToken(userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("期限切れトークンはErrExpiredToken", func(t *testing.T) {
		shortLived := jwt.NewService("test-secret", 1*time.Millisecond)
		token, err := shortLived.GenerateToken(userID)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = shortLived.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークンはErrInvalidToken", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(userID)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れたトークンはErrInvalidToken", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
