package services

import (
	"time"

	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(username, password string) (*models.Customer, string, error)
}

type authService struct {
	customerRepo repository.CustomerRepository
	jwtSecret    string
	tokenExpiry  time.Duration
}

func NewAuthService(customerRepo repository.CustomerRepository, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		customerRepo: customerRepo,
		jwtSecret:    jwtSecret,
		tokenExpiry:  tokenExpiry,
	}
}

// Login checks the credentials and issues a signed token. An unknown username
// and a wrong password both return ErrInvalidCredentials; the caller can never
// tell which check failed.
func (s *authService) Login(username, password string) (*models.Customer, string, error) {
	customer, err := s.customerRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := s.generateToken(customer)
	if err != nil {
		return nil, "", err
	}

	return customer, tokenString, nil
}

func (s *authService) generateToken(customer *models.Customer) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"customer_id": customer.ID,
		"username":    customer.Username,
		"email":       customer.Email,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(s.tokenExpiry).Unix(),
	})

	return token.SignedString([]byte(s.jwtSecret))
}
