package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService owns the order workflow: status transitions stamp the
// matching date field once and a COMPLETED transition marks the linked
// project as done.
type OrderService struct {
	db       *gorm.DB
	orders   *repository.Repository[entity.Order]
	users    *repository.Repository[entity.User]
	projects *repository.Repository[entity.Project]
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		db:       db,
		orders:   repository.New[entity.Order](db),
		users:    repository.New[entity.User](db),
		projects: repository.New[entity.Project](db),
	}
}

// UpdateOrderInput carries a sparse update: only non-nil fields are applied.
type UpdateOrderInput struct {
	Status      *entity.OrderStatus `json:"status"`
	StartPrice  *decimal.Decimal    `json:"start_price"`
	FinalPrice  *decimal.Decimal    `json:"final_price"`
	PaymentDate *string             `json:"payment_date"`
	StartDate   *string             `json:"start_date"`
	EndDate     *string             `json:"end_date"`
}

func (in UpdateOrderInput) validate() error {
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
	}
	if in.FinalPrice != nil {
		if in.FinalPrice.IsNegative() || (in.StartPrice != nil && in.StartPrice.IsNegative()) {
			return fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
	}
	now := today()
	for name, value := range map[string]*string{
		"start_date":   in.StartDate,
		"end_date":     in.EndDate,
		"payment_date": in.PaymentDate,
	} {
		if value == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *value); err != nil {
			return fmt.Errorf("%w: %s is not a valid date", ErrValidation, name)
		}
		if *value > now {
			return fmt.Errorf("%w: %s must not be in the future", ErrValidation, name)
		}
	}
	if in.StartDate != nil && in.EndDate != nil && *in.StartDate > *in.EndDate {
		return fmt.Errorf("%w: start_date is after end_date", ErrValidation)
	}
	return nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orders.FindOne(ctx, repository.Filter{"id": id})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

// GetAll lists orders matching the filter, each denormalized with its user
// and a shortened project projection. A dangling user or project reference
// is surfaced as a failure rather than dropped.
func (s *OrderService) GetAll(ctx context.Context, filter repository.Filter) ([]OrderView, error) {
	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.view(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *OrderService) GetView(ctx context.Context, id uint) (*OrderView, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *order)
}

func (s *OrderService) view(ctx context.Context, order entity.Order) (*OrderView, error) {
	user, err := s.users.FindOne(ctx, repository.Filter{"id": order.IDUser})
	if err != nil {
		return nil, fmt.Errorf("%w: order %d references missing user %d", ErrFailed, order.ID, order.IDUser)
	}
	project, err := s.projects.FindOne(ctx, repository.Filter{"id": order.IDProject})
	if err != nil {
		return nil, fmt.Errorf("%w: order %d references missing project %d", ErrFailed, order.ID, order.IDProject)
	}
	return &OrderView{Order: order, User: *user, Project: shortProject(*project)}, nil
}

// Create opens a PENDING order for the caller on the given project.
func (s *OrderService) Create(ctx context.Context, idUser, idProject uint) (*entity.Order, error) {
	order := &entity.Order{
		IDUser:      idUser,
		IDProject:   idProject,
		Status:      entity.OrderPending,
		CreatedDate: today(),
	}
	if err := s.orders.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return order, nil
}

// Update applies a sparse order update. A status change stamps the matching
// date field when it is still unset: IN_PROGRESS stamps start_date,
// COMPLETED stamps end_date and marks the project done, PAID stamps
// payment_date. updated_date is stamped on every call.
func (s *OrderService) Update(ctx context.Context, id uint, in UpdateOrderInput) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := in.validate(); err != nil {
		return err
	}

	changes := map[string]any{"updated_date": today()}
	if in.StartPrice != nil {
		changes["start_price"] = *in.StartPrice
	}
	if in.FinalPrice != nil {
		changes["final_price"] = *in.FinalPrice
	}
	if in.PaymentDate != nil {
		changes["payment_date"] = *in.PaymentDate
	}
	if in.StartDate != nil {
		changes["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		changes["end_date"] = *in.EndDate
	}

	markProjectDone := false
	if in.Status != nil {
		changes["status"] = *in.Status
		switch {
		case *in.Status == entity.OrderInProgress && order.StartDate == nil:
			changes["start_date"] = today()
		case *in.Status == entity.OrderCompleted && order.EndDate == nil:
			changes["end_date"] = today()
			markProjectDone = true
		case *in.Status == entity.OrderPaid && order.PaymentDate == nil:
			changes["payment_date"] = today()
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repository.New[entity.Order](tx).Update(ctx, id, changes); err != nil {
			return fmt.Errorf("%w: %v", ErrFailed, err)
		}
		if markProjectDone {
			if _, err := repository.New[entity.Project](tx).Update(ctx, order.IDProject, map[string]any{"is_done": true}); err != nil {
				return fmt.Errorf("%w: %v", ErrFailed, err)
			}
		}
		return nil
	})
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	err := s.orders.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
