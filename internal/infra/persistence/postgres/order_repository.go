package postgres

import (
	"context"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).First(&orderM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByBuyer retrieves all orders placed by the given buyer, newest first.
func (repo *orderRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findAll(ctx, "buyer_id = ?", buyerID)
}

// FindBySeller retrieves all orders addressed to the given seller, newest first.
func (repo *orderRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	return repo.findAll(ctx, "seller_id = ?", sellerID)
}

func (repo *orderRepository) findAll(ctx context.Context, cond string, arg any) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// Create persists a new order entity to the database.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references unknown buyer or seller")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateStatus changes the lifecycle state of an existing order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		Items:           items,
		TotalPrice:      data.TotalPrice,
		ShippingAddress: data.ShippingAddress,
		Status:          entity.OrderStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemRecord, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemRecord{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		Items:           items,
		TotalPrice:      data.TotalPrice,
		ShippingAddress: data.ShippingAddress,
		Status:          data.Status.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
