package service

import (
	"context"
	"strings"
	"time"

	"dinehub/internal/domain"
	"dinehub/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	customerSessionTTL = 24 * time.Hour
	employeeSessionTTL = time.Hour
)

// AuthService issues and resolves opaque session tokens. The token itself
// carries nothing; the store is the single source of truth for identity.
type AuthService struct {
	customers repository.CustomerRepositoryInterface
	employees repository.EmployeeRepositoryInterface
	sessions  repository.SessionRepositoryInterface
}

func NewAuthService(
	customers repository.CustomerRepositoryInterface,
	employees repository.EmployeeRepositoryInterface,
	sessions repository.SessionRepositoryInterface,
) *AuthService {
	return &AuthService{customers: customers, employees: employees, sessions: sessions}
}

type RegisterCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

func (s *AuthService) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (int64, error) {
	if req.Name == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return 0, domain.Validationf("name, email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.customers.Register(ctx, domain.Customer{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	})
}

// LoginCustomer checks credentials and opens a session. A guest customer row
// created during checkout has no password and cannot log in.
func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (domain.Session, error) {
	c, ok, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok || c.PasswordHash == "" {
		return domain.Session{}, domain.Validationf("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.Validationf("invalid credentials")
	}
	return s.open(ctx, domain.Identity{ID: c.ID, Role: domain.RoleCustomer}, customerSessionTTL)
}

func (s *AuthService) LoginEmployee(ctx context.Context, username, password string) (domain.Session, error) {
	e, ok, err := s.employees.GetByUsername(ctx, username)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.Validationf("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.Validationf("invalid credentials")
	}
	return s.open(ctx, domain.Identity{ID: e.ID, Role: e.Role}, employeeSessionTTL)
}

func (s *AuthService) open(ctx context.Context, id domain.Identity, ttl time.Duration) (domain.Session, error) {
	session := domain.Session{
		Token:     uuid.NewString(),
		Identity:  id,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Identity, bool, error) {
	if token == "" {
		return domain.Identity{}, false, nil
	}
	return s.sessions.Resolve(ctx, token)
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
