package service

import (
	"context"

	"github.com/rajvichauhan/Rental-Management-sub000/internal/domain"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/logger"
	"github.com/rajvichauhan/Rental-Management-sub000/internal/repository"
)

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, emailSvc EmailService) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, status domain.OrderStatus, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.orderRepo.List(ctx, status, page, pageSize)
}

func (s *orderService) ListMyOrders(ctx context.Context, userID int64, page, pageSize int) ([]domain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.orderRepo.ListByUser(ctx, userID, page, pageSize)
}

// ChangeStatus applies the status chain at the domain layer: only the
// immediate next status or a cancellation of a non-terminal order is
// accepted, no matter what the caller selected.
func (s *orderService) ChangeStatus(ctx context.Context, orderID int64, newStatus domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Transition(newStatus); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, order.Status); err != nil {
		return nil, err
	}

	// Notify the customer; a mail failure never rolls back the transition.
	if user, err := s.userRepo.GetByID(ctx, order.UserID); err == nil {
		if err := s.emailSvc.SendOrderStatusUpdate(ctx, user.Email, user.Name, order.ID, order.Status); err != nil {
			logger.ErrorContext(ctx, "Failed to send status update email", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}
