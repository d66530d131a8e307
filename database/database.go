package database

import (
	"fmt"
	"sync"
	"time"

	"munshiji/models"
	"munshiji/utils"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")

// Store owns the in-memory collections. All access goes through its methods;
// readers get copies, so callers can never mutate the collections directly.
type Store struct {
	mu        sync.RWMutex
	products  []models.Product
	customers []models.Customer
	sales     []models.Sale

	// Last assigned sequence numbers. They only grow.
	productSeq int
	saleSeq    int

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to timestamp new sales.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store holding copies of the given collections. Sequences
// continue after the seeded records.
func New(products []models.Product, customers []models.Customer, sales []models.Sale, opts ...Option) *Store {
	s := &Store{
		products:   append([]models.Product(nil), products...),
		customers:  append([]models.Customer(nil), customers...),
		sales:      append([]models.Sale(nil), sales...),
		productSeq: len(products),
		saleSeq:    len(sales),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded creates a store loaded with the demo data.
func NewSeeded(opts ...Option) *Store {
	return New(SeedProducts(), SeedCustomers(), SeedSales(), opts...)
}

// ListProducts returns the products matching every set filter, in insertion
// order.
func (s *Store) ListProducts(f models.ProductFilter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Search != "" && !utils.MatchesProductName(f.Search, p.NameHindi, p.NameEnglish) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.LowStock && !p.IsLowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetProduct looks a product up by exact id.
func (s *Store) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errors.Wrapf(ErrProductNotFound, "id %q", id)
}

// CreateProduct appends p under a freshly assigned id. Any id set by the
// caller is discarded; every other field is stored as given.
func (s *Store) CreateProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	p.ID = fmt.Sprint(s.productSeq)
	s.products = append(s.products, p)
	return p
}

// ListCustomers returns the customer directory.
func (s *Store) ListCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.customers...)
}

// ListSales returns every recorded sale in insertion order.
func (s *Store) ListSales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Sale(nil), s.sales...)
}

// Products returns the whole catalog.
func (s *Store) Products() []models.Product {
	return s.ListProducts(models.ProductFilter{})
}

// CreateSale records a bill for the given items. CREDIT puts the whole total
// on credit; every other payment mode is treated as paid in full.
func (s *Store) CreateSale(in models.CreateSaleInput) models.Sale {
	var total float64
	for _, item := range in.Items {
		total += item.Quantity * item.UnitPrice
	}

	sale := models.Sale{
		CustomerName: in.CustomerName,
		TotalAmount:  total,
		PaymentMode:  in.PaymentMode,
		ItemsCount:   len(in.Items),
	}
	if sale.CustomerName == "" {
		sale.CustomerName = models.WalkInCustomer
	}
	if utils.IsCreditPayment(in.PaymentMode) {
		sale.CreditAmount = total
	} else {
		sale.PaidAmount = total
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saleSeq++
	sale.ID = fmt.Sprint(s.saleSeq)
	sale.BillNumber = utils.FormatBillNumber(s.saleSeq)
	sale.Date = s.now().UTC()
	s.sales = append(s.sales, sale)
	return sale
}
