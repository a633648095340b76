package services

import (
	"errors"
	"testing"
	"time"

	"utibu_health/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (AuthService, CustomerService) {
	t.Helper()
	customerRepo := repository.NewCustomerRepository(newTestDB(t))
	return NewAuthService(customerRepo, testSecret, time.Hour), NewCustomerService(customerRepo)
}

func TestLoginSuccess(t *testing.T) {
	authSvc, customerSvc := newAuthFixture(t)

	created, err := customerSvc.Register(signupRequest("jane", "jane@example.com"))
	require.NoError(t, err)

	customer, tokenString, err := authSvc.Login("jane", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, customer.ID)
	assert.Equal(t, "jane@example.com", customer.Email)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(created.ID), claims["customer_id"])
	assert.Equal(t, "jane", claims["username"])
	assert.Equal(t, "jane@example.com", claims["email"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	authSvc, customerSvc := newAuthFixture(t)

	_, err := customerSvc.Register(signupRequest("jane", "jane@example.com"))
	require.NoError(t, err)

	_, _, wrongPassword := authSvc.Login("jane", "not-the-password")
	_, _, unknownUser := authSvc.Login("nobody", "secret123")

	assert.True(t, errors.Is(wrongPassword, ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownUser, ErrInvalidCredentials))
	assert.Equal(t, wrongPassword, unknownUser, "both failures must be the same signal")
}
