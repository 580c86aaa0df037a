package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tanvirfarhan/krishibazar/internal/checkout/domain"
	orderdomain "github.com/tanvirfarhan/krishibazar/internal/order/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// Line is a cart line as the assembler sees it.
type Line struct {
	ProductID   int64
	Name        string
	UnitPrice   decimal.Decimal
	Image       string
	Seller      string
	Quantity    int
	MaxQuantity int
}

// CartSource is the assembler's view of the session cart.
type CartSource interface {
	Lines() []Line
	Totals() (subtotal, deliveryFee, total decimal.Decimal)
	Clear() error
}

type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Stock int
}

type CatalogReader interface {
	GetProduct(ctx context.Context, id int64) (Product, error)
}

// OrderWriter persists assembled orders and hands back the stamped record.
type OrderWriter interface {
	Create(ctx context.Context, o orderdomain.Order) (orderdomain.Order, error)
}

type Service struct {
	cart    CartSource
	catalog CatalogReader
	orders  OrderWriter

	maxConcurrent int
}

func NewService(cart CartSource, catalog CatalogReader, orders OrderWriter, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		orders:        orders,
		maxConcurrent: maxConcurrent,
	}
}

// PlaceOrder validates the delivery form and payment selection, snapshots
// the cart into an immutable order, persists it and only then clears the
// cart. A failed precondition leaves both the order list and the cart
// untouched.
func (s *Service) PlaceOrder(ctx context.Context, form domain.DeliveryDetails, pay domain.PaymentSelection) (orderdomain.Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return orderdomain.Order{}, ErrEmptyCart
	}

	if err := validatePlacement(form, pay); err != nil {
		return orderdomain.Order{}, err
	}

	items := make([]orderdomain.Item, len(lines))
	for i, l := range lines {
		items[i] = orderdomain.Item{
			ProductID:   l.ProductID,
			Name:        l.Name,
			UnitPrice:   l.UnitPrice,
			Image:       l.Image,
			Seller:      l.Seller,
			Quantity:    l.Quantity,
			MaxQuantity: l.MaxQuantity,
		}
	}

	subtotal, deliveryFee, total := s.cart.Totals()

	order := orderdomain.Order{
		Customer: orderdomain.Customer{
			FirstName:  form.FirstName,
			LastName:   form.LastName,
			Address:    form.Address,
			District:   form.District,
			PostalCode: form.PostalCode,
			Phone:      form.Phone,
			Email:      form.Email,
			Notes:      form.Notes,
		},
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       total,
		Payment:     paymentRecord(pay),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return orderdomain.Order{}, err
	}

	if err := s.cart.Clear(); err != nil {
		return created, fmt.Errorf("order %s placed but cart not cleared: %w", created.OrderID, err)
	}
	return created, nil
}

func paymentRecord(pay domain.PaymentSelection) orderdomain.Payment {
	details := map[string]string{}
	switch pay.Method {
	case orderdomain.PaymentMobileWallet:
		details["number"] = pay.WalletNumber
		details["trxId"] = pay.TransactionID
	case orderdomain.PaymentBankTransfer:
		details["trxId"] = pay.TransactionID
	}
	return orderdomain.Payment{Method: pay.Method, Details: details}
}

// Quote re-prices the current cart against the live catalog and flags lines
// whose requested quantity is no longer in stock. It does not change what
// PlaceOrder uses: orders keep the prices captured at add-to-cart time.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	cartLines := s.cart.Lines()
	if len(cartLines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(cartLines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range cartLines {
		idx := idx
		g.Go(func() error {
			l := cartLines[idx]

			product, err := s.catalog.GetProduct(ctx, l.ProductID)
			if err != nil {
				return fmt.Errorf("re-price product %d: %w", l.ProductID, err)
			}

			qty := decimal.NewFromInt(int64(l.Quantity))
			lines[idx] = domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  l.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Mul(qty),
				InStock:   product.Stock >= l.Quantity,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal)
	}
	_, deliveryFee, _ := s.cart.Totals()

	return domain.Quote{
		Lines:       lines,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(deliveryFee),
	}, nil
}
