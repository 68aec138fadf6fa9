package dao

import (
	"context"
	"errors"
	"testing"

	"ezelectronics/errs"
	"ezelectronics/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const testCartID = "5b0e2c4e-8f4a-4bb4-9a3e-6f0b8a2d1c11"

func cartRows() *sqlmock.Rows {
	return sqlmock.NewRows(cartColumns)
}

func TestCartDAOGetCurrentCart(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectQuery(`^SELECT id, customer, paid, payment_date, total, products FROM cart WHERE customer = \$1 AND paid = \$2$`).
		WithArgs("alice", false).
		WillReturnRows(cartRows().AddRow(
			testCartID, "alice", false, nil, 200.0,
			[]byte(`{"version":1,"items":[{"model":"testmodel","quantity":2,"category":"Smartphone","price":100}]}`),
		))

	cart, err := d.GetCurrentCart(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetCurrentCart() error = %v", err)
	}
	if cart.ID != uuid.MustParse(testCartID) {
		t.Fatalf("id = %s", cart.ID)
	}
	if cart.PaymentDate != nil || cart.Paid {
		t.Fatalf("cart should be unpaid: %+v", cart)
	}
	if len(cart.Products) != 1 || cart.Products[0].Quantity != 2 || cart.Total != 200 {
		t.Fatalf("unexpected cart %+v", cart)
	}
}

func TestCartDAOGetCurrentCartNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectQuery(`^SELECT (.+) FROM cart WHERE customer = \$1 AND paid = \$2$`).
		WithArgs("alice", false).
		WillReturnRows(cartRows())

	if _, err := d.GetCurrentCart(context.Background(), "alice"); !errors.Is(err, errs.ErrCartNotFound) {
		t.Fatalf("GetCurrentCart() error = %v, want ErrCartNotFound", err)
	}
}

func TestCartDAOCreateCart(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	cart := models.NewCart("alice")
	cart.Products = append(cart.Products, models.ProductInCart{Model: "testmodel", Quantity: 1, Category: models.CategorySmartphone, Price: 100})
	cart.Total = 100

	mock.ExpectExec(`^INSERT INTO cart \(id,customer,paid,payment_date,total,products\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\)$`).
		WithArgs(sqlmock.AnyArg(), "alice", false, nil, 100.0,
			`{"version":1,"items":[{"model":"testmodel","quantity":1,"category":"Smartphone","price":100}]}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := d.CreateCart(context.Background(), cart)
	if err != nil {
		t.Fatalf("CreateCart() error = %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("CreateCart() did not assign an id")
	}
}

func TestCartDAOCreateCartAlreadyExists(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectExec(`^INSERT INTO cart`).WillReturnError(&pq.Error{Code: "23505"})

	id, err := d.CreateCart(context.Background(), models.NewCart("alice"))
	if !errors.Is(err, errs.ErrCurrentCartExists) {
		t.Fatalf("CreateCart() error = %v, want ErrCurrentCartExists", err)
	}
	if id != uuid.Nil {
		t.Fatalf("CreateCart() id = %s, want nil", id)
	}
}

func TestCartDAODeleteCurrentCart(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "no unpaid cart", affected: 0, wantErr: errs.ErrCartNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			d := NewCartDAO(db)

			mock.ExpectExec(`^DELETE FROM cart WHERE customer = \$1 AND paid = \$2$`).
				WithArgs("alice", false).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			if err := d.DeleteCurrentCart(context.Background(), "alice"); !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeleteCurrentCart() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCartDAOUpdateCurrentCart(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	cart := models.Cart{ID: uuid.MustParse(testCartID), Customer: "alice", Products: models.ProductsInCart{}}

	mock.ExpectExec(`^UPDATE cart SET total = \$1, products = \$2 WHERE id = \$3 AND paid = \$4$`).
		WithArgs(0.0, `{"version":1,"items":[]}`, testCartID, false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := d.UpdateCurrentCart(context.Background(), cart); !errors.Is(err, errs.ErrCartNotFound) {
		t.Fatalf("UpdateCurrentCart() error = %v, want ErrCartNotFound", err)
	}
}

func checkoutCart() models.Cart {
	return models.Cart{
		ID:       uuid.MustParse(testCartID),
		Customer: "alice",
		Total:    350,
		Products: models.ProductsInCart{
			{Model: "phone", Quantity: 2, Category: models.CategorySmartphone, Price: 100},
			{Model: "oven", Quantity: 1, Category: models.CategoryAppliance, Price: 150},
		},
	}
}

func TestCartDAOCheckoutCartCommits(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`^UPDATE products SET quantity = quantity - \$1 WHERE model = \$2 AND quantity >= \$3 RETURNING quantity$`).
		WithArgs(2, "phone", 2).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
	mock.ExpectQuery(`^UPDATE products SET quantity = quantity - \$1`).
		WithArgs(1, "oven", 1).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(0))
	mock.ExpectExec(`^UPDATE cart SET paid = \$1, payment_date = \$2 WHERE id = \$3 AND paid = \$4$`).
		WithArgs(true, "2026-10-19", testCartID, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := d.CheckoutCart(context.Background(), checkoutCart(), "2026-10-19"); err != nil {
		t.Fatalf("CheckoutCart() error = %v", err)
	}
}

func TestCartDAOCheckoutCartRollsBackOnLowStock(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`^UPDATE products SET quantity = quantity - \$1`).
		WithArgs(2, "phone", 2).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
	mock.ExpectQuery(`^UPDATE products SET quantity = quantity - \$1`).
		WithArgs(1, "oven", 1).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}))
	mock.ExpectRollback()

	err := d.CheckoutCart(context.Background(), checkoutCart(), "2026-10-19")
	if !errors.Is(err, errs.ErrLowProductStock) {
		t.Fatalf("CheckoutCart() error = %v, want ErrLowProductStock", err)
	}
}

func TestCartDAOCheckoutCartRollsBackWhenCartVanished(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	cart := checkoutCart()
	cart.Products = cart.Products[:1]

	mock.ExpectBegin()
	mock.ExpectQuery(`^UPDATE products`).
		WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
	mock.ExpectExec(`^UPDATE cart SET paid`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := d.CheckoutCart(context.Background(), cart, "2026-10-19"); !errors.Is(err, errs.ErrCartNotFound) {
		t.Fatalf("CheckoutCart() error = %v, want ErrCartNotFound", err)
	}
}

func TestCartDAOGetCustomerCarts(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectQuery(`^SELECT (.+) FROM cart WHERE customer = \$1 AND paid = \$2 ORDER BY payment_date$`).
		WithArgs("alice", true).
		WillReturnRows(cartRows().
			AddRow(testCartID, "alice", true, "2026-10-01", 100.0, `[{"model":"m","quantity":1,"category":"Laptop","price":100}]`))

	carts, err := d.GetCustomerCarts(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetCustomerCarts() error = %v", err)
	}
	if len(carts) != 1 || carts[0].PaymentDate == nil || *carts[0].PaymentDate != "2026-10-01" {
		t.Fatalf("unexpected carts %+v", carts)
	}
	if len(carts[0].Products) != 1 {
		t.Fatalf("legacy products column not decoded: %+v", carts[0].Products)
	}
}

func TestCartDAOGetAllAndDeleteAll(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewCartDAO(db)

	mock.ExpectQuery(`^SELECT (.+) FROM cart ORDER BY customer, paid$`).WillReturnRows(cartRows())
	mock.ExpectExec(`^DELETE FROM cart$`).WillReturnResult(sqlmock.NewResult(0, 0))

	carts, err := d.GetAllCarts(context.Background())
	if err != nil {
		t.Fatalf("GetAllCarts() error = %v", err)
	}
	if carts == nil || len(carts) != 0 {
		t.Fatalf("want an empty non-nil slice, got %#v", carts)
	}
	if err := d.DeleteAllCarts(context.Background()); err != nil {
		t.Fatalf("DeleteAllCarts() error = %v", err)
	}
}
