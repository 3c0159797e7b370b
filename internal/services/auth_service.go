package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skyshield/bastion/internal/auth"
	"skyshield/bastion/internal/db/repositories"
	"skyshield/bastion/internal/models/dtos"
)

// AuthService verifies operator credentials and issues session tokens.
type AuthService struct {
	operators *repositories.OperatorRepository
}

func NewAuthService(operators *repositories.OperatorRepository) *AuthService {
	return &AuthService{operators: operators}
}

// Login checks the password against the stored bcrypt hash. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dtos.LoginResponse, error) {
	op, err := s.operators.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.operators.TouchLastLogin(ctx, op.OperatorID); err != nil {
		return nil, fmt.Errorf("record login time: %w", err)
	}

	token, err := auth.IssueOperatorToken(op.OperatorID, op.Username, op.Role)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &dtos.LoginResponse{
		Message: "Login successful",
		Operator: dtos.OperatorInfo{
			ID:       op.OperatorID,
			Username: op.Username,
			Role:     op.Role,
		},
		Token: token,
	}, nil
}
