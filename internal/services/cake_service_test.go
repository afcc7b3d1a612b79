package services_test

import (
	"fmt"
	"testing"

	"bakeshop/internal/models"
	"bakeshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCakeRepo is a mock implementation of repositories.CakeRepository
type MockCakeRepo struct {
	mock.Mock
}

func (m *MockCakeRepo) GetAll() ([]models.Cake, error) {
	args := m.Called()
	return args.Get(0).([]models.Cake), args.Error(1)
}

func (m *MockCakeRepo) GetByID(id string) (*models.Cake, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cake), args.Error(1)
}

func (m *MockCakeRepo) Create(cake *models.Cake) error {
	args := m.Called(cake)
	return args.Error(0)
}

func (m *MockCakeRepo) Update(cake *models.Cake) error {
	args := m.Called(cake)
	return args.Error(0)
}

func (m *MockCakeRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func catalogFixture() []models.Cake {
	return []models.Cake{
		{ID: "1", Name: "Chocolate Fudge", Category: "birthday", Price: 30},
		{ID: "2", Name: "Chocolate Log", Category: "Christmas", Price: 40},
		{ID: "3", Name: "Strawberry Tart", Category: "birthday", Price: 25},
	}
}

func TestCakeService_SearchCakes(t *testing.T) {
	mockRepo := new(MockCakeRepo)
	service := services.NewCakeService(mockRepo)
	mockRepo.On("GetAll").Return(catalogFixture(), nil)

	// category + query combine with AND
	cakes, err := service.SearchCakes("Birthday", "chocolate")
	assert.NoError(t, err)
	assert.Len(t, cakes, 1)
	assert.Equal(t, "Chocolate Fudge", cakes[0].Name)

	// "All" matches every category
	cakes, err = service.SearchCakes("All", "chocolate")
	assert.NoError(t, err)
	assert.Len(t, cakes, 2)

	// blank query matches everything
	cakes, err = service.SearchCakes("birthday", "")
	assert.NoError(t, err)
	assert.Len(t, cakes, 2)

	// no filters at all
	cakes, err = service.SearchCakes("", "")
	assert.NoError(t, err)
	assert.Len(t, cakes, 3)
}

func TestCakeService_CreateCake_DefaultsStatus(t *testing.T) {
	mockRepo := new(MockCakeRepo)
	service := services.NewCakeService(mockRepo)

	cake := &models.Cake{Name: "New Cake", Price: 50.0}
	mockRepo.On("Create", cake).Return(nil).Once()

	err := service.CreateCake(cake)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, cake.Status)
	mockRepo.AssertExpectations(t)
}

func TestCakeService_GetCakeByID(t *testing.T) {
	mockRepo := new(MockCakeRepo)
	service := services.NewCakeService(mockRepo)

	expected := &models.Cake{ID: "1", Name: "Chocolate Fudge", Price: 30}
	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	cake, err := service.GetCakeByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, cake)

	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("cake with ID 99 not found")).Once()
	cake, err = service.GetCakeByID("99")
	assert.Error(t, err)
	assert.Nil(t, cake)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestCakeService_DeleteCake(t *testing.T) {
	mockRepo := new(MockCakeRepo)
	service := services.NewCakeService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	assert.NoError(t, service.DeleteCake("1"))

	mockRepo.On("Delete", "99").Return(fmt.Errorf("cake with ID 99 not found for deletion")).Once()
	err := service.DeleteCake("99")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
