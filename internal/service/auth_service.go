package service

import (
	"context"
	"strings"

	"github.com/denwadesk/denwa-backend/internal/common"
	"github.com/denwadesk/denwa-backend/internal/domain"
	"github.com/denwadesk/denwa-backend/internal/repository"
	"github.com/denwadesk/denwa-backend/pkg/auth"
)

// LoginRequest carries the operator's login form values.
type LoginRequest struct {
	ProjectID int
	LoginID   string
	Password  string
}

// LoginResult is the outcome of one login attempt: either success with the
// authenticated operator and project, or a single user-facing error message.
type LoginResult struct {
	IsSuccess    bool
	ErrorMessage string
	Operator     *domain.OperatorMaster
	Project      *domain.ProjectMaster
}

// AuthService authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

type authService struct {
	operatorRepo repository.OperatorRepository
	projectRepo  repository.ProjectRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(operatorRepo repository.OperatorRepository, projectRepo repository.ProjectRepository) AuthService {
	return &authService{
		operatorRepo: operatorRepo,
		projectRepo:  projectRepo,
	}
}

// Login verifies a login attempt. Validation order is fixed: missing project
// id, missing login id, missing password, project not found, project
// inactive, operator not found, operator inactive, password mismatch.
// Unknown login and wrong password share one message so the form cannot be
// used to probe for accounts. The returned error is reserved for data-access
// failures.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	if req.ProjectID <= 0 {
		return loginFailure(common.ErrProjectRequired.Error()), nil
	}
	if strings.TrimSpace(req.LoginID) == "" {
		return loginFailure(common.ErrLoginIDRequired.Error()), nil
	}
	if strings.TrimSpace(req.Password) == "" {
		return loginFailure(common.ErrPasswordRequired.Error()), nil
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return loginFailure(common.ErrProjectNotFound.Error()), nil
	}
	if !project.IsActive {
		return loginFailure(common.ErrProjectInactive.Error()), nil
	}

	operator, err := s.operatorRepo.GetByLogin(ctx, req.ProjectID, req.LoginID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return loginFailure(common.ErrInvalidCredentials.Error()), nil
	}
	if !operator.IsActive {
		return loginFailure(common.ErrOperatorInactive.Error()), nil
	}

	if !s.VerifyPassword(req.Password, operator.PasswordHash) {
		return loginFailure(common.ErrInvalidCredentials.Error()), nil
	}

	return &LoginResult{
		IsSuccess: true,
		Operator:  operator,
		Project:   project,
	}, nil
}

// HashPassword hashes a plain password for storage
func (s *authService) HashPassword(password string) (string, error) {
	return auth.HashPassword(password)
}

// VerifyPassword checks a plain password against a stored hash
func (s *authService) VerifyPassword(password, hash string) bool {
	return auth.VerifyPassword(password, hash)
}

func loginFailure(message string) *LoginResult {
	return &LoginResult{IsSuccess: false, ErrorMessage: message}
}
