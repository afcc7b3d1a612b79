package services_test

import (
	"fmt"
	"testing"

	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
	"bakeshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateContact(id string, phone, address string) error {
	args := m.Called(id, phone, address)
	return args.Error(0)
}

func newUserWithCart(t *testing.T) *repositories.MockUserRepository {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	err := userRepo.Create(&models.User{
		ID:      "user-1",
		Name:    "Alice",
		Phone:   "0123456789",
		Address: "1 Bakery Lane",
		Cart: []models.CartLine{
			{CakeID: "cake-A", Name: "Red Velvet", Price: 25.0, Quantity: 2,
				Variant: &models.OrderVariant{Label: "10cm", Price: 25.0}},
			{CakeID: "cake-B", Name: "Tiramisu", Price: 20.0, Quantity: 1},
		},
	})
	assert.NoError(t, err)
	return userRepo
}

func TestOrderService_Checkout(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	userRepo := newUserWithCart(t)
	service := services.NewOrderService(mockRepo, userRepo, nil)

	var created *models.Order
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Order)
	}).Return(nil).Once()

	order, err := service.Checkout("user-1")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, created, order)

	// snapshot of the user's profile at order time
	assert.Equal(t, "Alice", order.UserName)
	assert.Equal(t, "0123456789", order.UserPhone)
	assert.Equal(t, "1 Bakery Lane", order.UserAddress)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 70.0, order.TotalPrice, 0.0001) // 2*25 + 1*20
	assert.NotEmpty(t, order.ID)

	// the cart is cleared after a successful order
	user, err := userRepo.GetByID("user-1")
	assert.NoError(t, err)
	assert.Empty(t, user.Cart)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_FailureLeavesCartIntact(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	userRepo := newUserWithCart(t)
	service := services.NewOrderService(mockRepo, userRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("database error")).Once()

	order, err := service.Checkout("user-1")
	assert.Error(t, err)
	assert.Nil(t, order)

	user, err := userRepo.GetByID("user-1")
	assert.NoError(t, err)
	assert.Len(t, user.Cart, 2)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	userRepo := repositories.NewMockUserRepository()
	assert.NoError(t, userRepo.Create(&models.User{ID: "user-2"}))
	service := services.NewOrderService(mockRepo, userRepo, nil)

	order, err := service.Checkout("user-2")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "cart is empty")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_UpdateStatusAsAdmin(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	// Admins may move an order to any status, no transition guard.
	mockRepo.On("UpdateStatus", "order-1", models.OrderPending).Return(nil).Once()
	err := service.UpdateStatusAsAdmin("order-1", models.OrderPending)
	assert.NoError(t, err)

	mockRepo.On("UpdateStatus", "order-1", models.OrderCompleted).Return(nil).Once()
	err = service.UpdateStatusAsAdmin("order-1", models.OrderCompleted)
	assert.NoError(t, err)

	// Unknown status strings are still rejected.
	err = service.UpdateStatusAsAdmin("order-1", models.OrderStatus("shipped"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order status")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CancelAsClient(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	pending := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderPending}
	mockRepo.On("GetByID", "order-1").Return(pending, nil).Once()
	mockRepo.On("UpdateStatus", "order-1", models.OrderCancelled).Return(nil).Once()

	err := service.CancelAsClient("order-1", "user-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_CancelAsClient_TerminalOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	completed := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderCompleted}
	mockRepo.On("GetByID", "order-1").Return(completed, nil).Once()

	err := service.CancelAsClient("order-1", "user-1")
	assert.ErrorIs(t, err, services.ErrOrderNotEditable)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_CancelAsClient_WrongOwner(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	pending := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderPending}
	mockRepo.On("GetByID", "order-1").Return(pending, nil).Once()

	err := service.CancelAsClient("order-1", "user-2")
	assert.ErrorIs(t, err, services.ErrNotOrderOwner)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateContactAsClient(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	pending := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderPending}
	mockRepo.On("GetByID", "order-1").Return(pending, nil).Once()
	mockRepo.On("UpdateContact", "order-1", "0987654321", "2 Pastry Road").Return(nil).Once()

	err := service.UpdateContactAsClient("order-1", "user-1", "0987654321", "2 Pastry Road")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateContactAsClient_NotEditable(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, repositories.NewMockUserRepository(), nil)

	cancelled := &models.Order{ID: "order-1", UserID: "user-1", Status: models.OrderCancelled}
	mockRepo.On("GetByID", "order-1").Return(cancelled, nil).Once()

	err := service.UpdateContactAsClient("order-1", "user-1", "0987654321", "2 Pastry Road")
	assert.ErrorIs(t, err, services.ErrOrderNotEditable)
	mockRepo.AssertNotCalled(t, "UpdateContact", mock.Anything, mock.Anything, mock.Anything)
}
