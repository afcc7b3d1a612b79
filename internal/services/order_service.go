package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
	"bakeshop/pkg/rabbitmq"

	"github.com/google/uuid"
)

// ErrOrderNotEditable is returned when a client-side edit or
// cancellation targets an order that is no longer pending.
var ErrOrderNotEditable = errors.New("order is no longer editable")

// ErrNotOrderOwner is returned when a client operates on an order that
// belongs to another user.
var ErrNotOrderOwner = errors.New("order belongs to another user")

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil in tests
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mqClient:  mqClient,
	}
}

// GetAllOrders retrieves all orders (admin view).
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByUser retrieves a user's order history.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Checkout turns the user's current cart into a pending order. The
// order snapshots the user's name, phone, and address at order time.
// Two steps: persist the order, then clear the cart. If clearing fails
// after the order was written, the order stands and the cart is left as
// is; there is no compensating action.
func (s *OrderService) Checkout(userID string) (*models.Order, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s not found: %w", userID, err)
	}
	if len(user.Cart) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	newOrder := &models.Order{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		UserName:    user.Name,
		UserPhone:   user.Phone,
		UserAddress: user.Address,
		Items:       user.Cart,
		TotalPrice:  models.CartTotal(user.Cart),
		Status:      models.OrderPending,
		CreatedAt:   time.Now(),
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	if _, err := s.userRepo.MutateCart(userID, func([]models.CartLine) []models.CartLine {
		return []models.CartLine{}
	}); err != nil {
		// The order exists; the user will see a stale cart until the
		// next successful write.
		log.Printf("Warning: order %s created but cart for user %s was not cleared: %v", newOrder.ID, userID, err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.Status,
		"total":   newOrder.TotalPrice,
	})

	return newOrder, nil
}

// UpdateStatusAsAdmin sets an order to any of the three statuses.
// Administrators are trusted with arbitrary transitions; only the
// client path is guarded.
func (s *OrderService) UpdateStatusAsAdmin(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_changed", map[string]interface{}{
		"orderID": id,
		"status":  status,
	})
	return nil
}

// UpdateContactAsClient lets the order's owner change the delivery
// phone and address while the order is still pending.
func (s *OrderService) UpdateContactAsClient(id, userID, phone, address string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrNotOrderOwner
	}
	if !order.Editable() {
		return ErrOrderNotEditable
	}

	if err := s.orderRepo.UpdateContact(id, phone, address); err != nil {
		return fmt.Errorf("failed to update contact for order %s: %w", id, err)
	}
	return nil
}

// CancelAsClient lets the order's owner cancel a pending order.
func (s *OrderService) CancelAsClient(id, userID string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return ErrNotOrderOwner
	}
	if !models.CanTransition(order.Status, models.OrderCancelled) {
		return ErrOrderNotEditable
	}

	if err := s.orderRepo.UpdateStatus(id, models.OrderCancelled); err != nil {
		return fmt.Errorf("failed to cancel order %s: %w", id, err)
	}

	s.publishEvent("order.status_changed", map[string]interface{}{
		"orderID": id,
		"status":  models.OrderCancelled,
	})
	return nil
}

// publishEvent sends an order event to RabbitMQ. Event delivery is best
// effort; a publish failure is logged and never fails the operation.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	} else {
		log.Printf("Successfully published %s event", routingKey)
	}
}
