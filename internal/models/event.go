package models

import "time"

// ProductEventType names a product lifecycle change.
type ProductEventType string

const (
	ProductCreated ProductEventType = "product.created"
	ProductUpdated ProductEventType = "product.updated"
	ProductDeleted ProductEventType = "product.deleted"
)

// ProductEvent is published after a successful product mutation.
type ProductEvent struct {
	Type       ProductEventType `json:"type"`
	ProductID  uint             `json:"product_id"`
	SKU        string           `json:"sku"`
	OccurredAt time.Time        `json:"occurred_at"`
}
