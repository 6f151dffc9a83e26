package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/coopcredit/coopcredit/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, &auth.HashService{}, &auth.JWTService{})
	defer ctrl.Finish()
	return service, repo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		login         string
		role          string
		prepareMock   func(repo *MockRepo)
		expectedRole  string
		expectedError error
		expectInvalid bool
	}{
		{
			name:  "New user with default role",
			login: "newuser",
			role:  "",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, domain.RoleAffiliate, user.Role)
						assert.NotEqual(t, "password123", user.PasswordHash)
						return user, nil
					})
			},
			expectedRole: domain.RoleAffiliate,
		},
		{
			name:  "New analyst",
			login: "analyst",
			role:  domain.RoleAnalyst,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "analyst").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						return user, nil
					})
			},
			expectedRole: domain.RoleAnalyst,
		},
		{
			name:          "Unknown role",
			login:         "newuser",
			role:          "SUPERUSER",
			prepareMock:   func(repo *MockRepo) {},
			expectInvalid: true,
		},
		{
			name:  "Login already taken",
			login: "existinguser",
			role:  "",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "existinguser").Return(&domain.User{ID: 1, Login: "existinguser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:  "Repository failure on lookup",
			login: "newuser",
			role:  "",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "newuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			user, err := service.Register(context.Background(), tt.login, "password123", tt.role)

			switch {
			case tt.expectInvalid:
				assert.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Nil(t, user)
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, user.Role)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	hashService := &auth.HashService{}
	hashedPassword, err := hashService.HashPassword("password123")
	assert.NoError(t, err)

	storedUser := &domain.User{
		ID:           1,
		Login:        "testuser",
		PasswordHash: hashedPassword,
		Role:         domain.RoleAffiliate,
	}

	tests := []struct {
		name        string
		password    string
		prepareMock func(repo *MockRepo)
		expectError bool
	}{
		{
			name:     "Valid credentials",
			password: "password123",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(storedUser, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "wrongpassword",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(storedUser, nil)
			},
			expectError: true,
		},
		{
			name:     "Unknown login",
			password: "password123",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			user, err := service.Authenticate(context.Background(), "testuser", tt.password)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1, domain.RoleAnalyst)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	jwtService := &auth.JWTService{}
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.Role)
}
