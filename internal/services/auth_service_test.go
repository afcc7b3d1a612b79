package services_test

import (
	"testing"

	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
	"bakeshop/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key"

func TestAuthService_RegisterUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	user := &models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	}
	err := service.RegisterUser(user)
	assert.NoError(t, err)

	// password is stored hashed, and new users default to customer
	stored, err := userRepo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	assert.Equal(t, models.RoleCustomer, stored.Role)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	assert.NoError(t, service.RegisterUser(&models.User{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	}))

	err := service.RegisterUser(&models.User{
		Username: "alice", Email: "other@example.com", Password: "password123",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	assert.NoError(t, service.RegisterUser(&models.User{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	}))

	err := service.RegisterUser(&models.User{
		Username: "bob", Email: "alice@example.com", Password: "password123",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthService_LoginUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	assert.NoError(t, service.RegisterUser(&models.User{
		Username: "admin", Email: "admin@example.com", Password: "password123", Role: models.RoleAdmin,
	}))

	token, err := service.LoginUser("admin", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// the token carries identity and role claims
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, string(models.RoleAdmin), claims["role"])
	assert.NotEmpty(t, claims["user_id"])
}

func TestAuthService_LoginUser_InvalidCredentials(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	assert.NoError(t, service.RegisterUser(&models.User{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	}))

	_, err := service.LoginUser("alice", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	_, err = service.LoginUser("nobody", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	service := services.NewAuthService(userRepo, testJWTSecret)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// a token signed with a different secret is rejected
	other := services.NewAuthService(userRepo, "another-secret")
	assert.NoError(t, other.RegisterUser(&models.User{
		Username: "alice", Email: "alice@example.com", Password: "password123",
	}))
	token, err := other.LoginUser("alice", "password123")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
