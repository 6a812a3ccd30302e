package service

import (
	"context"
	"strings"

	"dinehub/internal/domain"
	"dinehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// StaffService is the admin-only employee management surface.
type StaffService struct {
	employees repository.EmployeeRepositoryInterface
}

func NewStaffService(employees repository.EmployeeRepositoryInterface) *StaffService {
	return &StaffService{employees: employees}
}

type RegisterEmployeeRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password"`
}

func (s *StaffService) Register(ctx context.Context, req RegisterEmployeeRequest) (int64, error) {
	if req.Name == "" || req.Username == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return 0, domain.Validationf("name, username, email and password are required")
	}
	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}
	if role != domain.RoleEmployee && role != domain.RoleAdmin {
		return 0, domain.Validationf("unknown role %q", req.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.employees.Create(ctx, domain.Employee{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
	})
}

func (s *StaffService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Delete removes an employee. Admins cannot delete their own account.
func (s *StaffService) Delete(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return domain.Validationf("cannot delete yourself")
	}
	ok, err := s.employees.Delete(ctx, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
