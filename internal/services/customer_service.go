package services

import (
	"utibu_health/internal/models"
	"utibu_health/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type CustomerService interface {
	Register(req *models.SignupRequest) (*models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(id uint, update *models.CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

// Register creates a customer after checking that neither the username nor
// the email is already taken by any existing row. The plaintext password is
// stored only as a bcrypt hash.
func (s *customerService) Register(req *models.SignupRequest) (*models.Customer, error) {
	exists, err := s.customerRepo.ExistsWithUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

// UpdateCustomer applies a partial update: only non-nil fields change. A
// supplied password is re-hashed before storage. Moving to a username or
// email another row holds is a conflict, same as on signup.
func (s *customerService) UpdateCustomer(id uint, update *models.CustomerUpdate) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		return nil, translateNotFound(err)
	}

	if update.Username != nil || update.Email != nil {
		username := customer.Username
		if update.Username != nil {
			username = *update.Username
		}
		email := customer.Email
		if update.Email != nil {
			email = *update.Email
		}
		taken, err := s.customerRepo.ExistsOtherWithUsernameOrEmail(id, username, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}

	if update.FirstName != nil {
		customer.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		customer.LastName = *update.LastName
	}
	if update.Email != nil {
		customer.Email = *update.Email
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	if update.Address != nil {
		customer.Address = *update.Address
	}
	if update.Username != nil {
		customer.Username = *update.Username
	}
	if update.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hashedPassword)
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes the row. Deletes never cascade: orders, statements
// and cart items referencing the customer remain as orphaned rows.
func (s *customerService) DeleteCustomer(id uint) error {
	if _, err := s.customerRepo.GetByID(id); err != nil {
		return translateNotFound(err)
	}
	return s.customerRepo.Delete(id)
}
