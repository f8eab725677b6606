package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Category is the fixed set of product categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
}

// Valid reports whether c belongs to the category enumeration.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a product in the catalog.
type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	SKU         string    `json:"sku"`
	Category    Category  `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProduct is the payload accepted when creating a product.
// Callers should start from NewCreateProduct so IsActive defaults to true.
type CreateProduct struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" validate:"required,price"`
	SKU         string   `json:"sku" validate:"required,max=100"`
	Category    Category `json:"category" validate:"required,oneof=electronics clothing books home sports"`
	IsActive    bool     `json:"is_active"`
}

// NewCreateProduct returns a CreateProduct carrying the field defaults.
func NewCreateProduct() CreateProduct {
	return CreateProduct{IsActive: true}
}

// UpdateProduct is a partial update; nil fields keep their stored value.
type UpdateProduct struct {
	Name        *string        `json:"name" validate:"omitnil,min=1,max=255"`
	Description NullableString `json:"description"`
	Price       *float64       `json:"price" validate:"omitnil,price"`
	SKU         *string        `json:"sku" validate:"omitnil,min=1,max=100"`
	Category    *Category      `json:"category" validate:"omitnil,oneof=electronics clothing books home sports"`
	IsActive    *bool          `json:"is_active"`
}

// Empty reports whether no field was supplied.
func (u UpdateProduct) Empty() bool {
	return u.Name == nil && !u.Description.Set && u.Price == nil &&
		u.SKU == nil && u.Category == nil && u.IsActive == nil
}

// NullableString distinguishes an absent JSON key from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// NewNullableString returns a set NullableString; a nil value means "clear".
func NewNullableString(value *string) NullableString {
	return NullableString{Set: true, Value: value}
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
