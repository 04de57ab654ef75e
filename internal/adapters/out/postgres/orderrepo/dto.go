// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders.
// Indexed by user and placement time for the listing queries.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(16);index"`
	TotalCents int64
	PlacedAt   time.Time      `gorm:"index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line. Lines are written once
// at order creation and never updated afterwards.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;index"`
	Qty            int
	UnitPriceCents int64
	SubtotalCents  int64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        aggregate.ID().Bytes(),
			ProductID:      item.ProductID().Bytes(),
			Qty:            item.Qty(),
			UnitPriceCents: item.UnitPriceCents(),
			SubtotalCents:  item.SubtotalCents(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		Status:     aggregate.Status().String(),
		TotalCents: aggregate.TotalCents(),
		PlacedAt:   aggregate.PlacedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, productID, itemDTO.UnitPriceCents, itemDTO.Qty, itemDTO.SubtotalCents)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, userID, order.Status(dto.Status), items, dto.PlacedAt)
}
