package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// cartProductsVersion is the layout written to the cart.products column.
// Version 0 is a bare JSON array.
const cartProductsVersion = 1

type Cart struct {
	ID          uuid.UUID      `json:"-" db:"id"`
	Customer    string         `json:"customer" db:"customer"`
	Paid        bool           `json:"paid" db:"paid"`
	PaymentDate *string        `json:"paymentDate" db:"payment_date"`
	Total       float64        `json:"total" db:"total"`
	Products    ProductsInCart `json:"products" db:"products"`
}

// ProductInCart is a snapshot of a product taken when it was added to the
// cart. Price and category are not kept in sync with the catalog.
type ProductInCart struct {
	Model    string   `json:"model"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
}

type ProductsInCart []ProductInCart

type cartProductsDocument struct {
	Version int             `json:"version"`
	Items   []ProductInCart `json:"items"`
}

// NewCart returns the empty, unsaved cart of a customer.
func NewCart(customer string) Cart {
	return Cart{
		Customer: customer,
		Products: ProductsInCart{},
	}
}

// CalculateTotal sums price*quantity over the lines, rounded to cents.
func CalculateTotal(products []ProductInCart) float64 {
	total := decimal.Zero
	for _, p := range products {
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}

func (p ProductsInCart) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]ProductInCart(p))
}

// Value stores the lines as a versioned JSON document.
func (p ProductsInCart) Value() (driver.Value, error) {
	items := []ProductInCart(p)
	if items == nil {
		items = []ProductInCart{}
	}
	b, err := json.Marshal(cartProductsDocument{Version: cartProductsVersion, Items: items})
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *ProductsInCart) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = ProductsInCart{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cart products: unsupported column type %T", src)
	}

	items, err := decodeCartProducts(raw)
	if err != nil {
		return err
	}
	*p = items
	return nil
}

func decodeCartProducts(raw []byte) (ProductsInCart, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("cart products: %w", err)
	}

	if _, legacy := probe.([]any); legacy {
		items := ProductsInCart{}
		if err := json.Unmarshal(raw, (*[]ProductInCart)(&items)); err != nil {
			return nil, fmt.Errorf("cart products: %w", err)
		}
		return items, nil
	}

	var doc cartProductsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("cart products: %w", err)
	}
	if doc.Version != cartProductsVersion {
		return nil, fmt.Errorf("cart products: unsupported version %d", doc.Version)
	}
	if doc.Items == nil {
		return ProductsInCart{}, nil
	}
	return ProductsInCart(doc.Items), nil
}
