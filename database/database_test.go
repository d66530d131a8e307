package database

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"munshiji/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestListProductsNoFilter(t *testing.T) {
	s := NewSeeded()
	got := s.ListProducts(models.ProductFilter{})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, ids(got))
}

func TestListProductsFilters(t *testing.T) {
	s := NewSeeded()

	assert.Equal(t, []string{"2", "8"}, ids(s.ListProducts(models.ProductFilter{LowStock: true})))
	assert.Equal(t, []string{"6", "7"}, ids(s.ListProducts(models.ProductFilter{Category: "व्यक्तिगत देखभाल"})))
	assert.Equal(t, []string{"1", "8"}, ids(s.ListProducts(models.ProductFilter{Search: "1KG"})))
	assert.Equal(t, []string{"9"}, ids(s.ListProducts(models.ProductFilter{Search: "मैगी"})))
	assert.Equal(t, []string{"8"}, ids(s.ListProducts(models.ProductFilter{Search: "1kg", LowStock: true})))
	assert.Empty(t, s.ListProducts(models.ProductFilter{Category: "अनाज", LowStock: true}))
}

// Every combination of filters must equal the intersection of the three
// predicates applied to the full catalog independently.
func TestListProductsIntersection(t *testing.T) {
	s := NewSeeded()
	all := s.Products()

	searches := []string{"", "1kg", "so", "तेल", "Oil", "zzz"}
	categories := []string{"", "अनाज", "व्यक्तिगत देखभाल", "घर की देखभाल", "none"}

	for _, search := range searches {
		for _, category := range categories {
			for _, low := range []bool{false, true} {
				var want []string
				for _, p := range all {
					nameOK := search == "" || strings.Contains(p.NameHindi, search) ||
						strings.Contains(strings.ToLower(p.NameEnglish), strings.ToLower(search))
					catOK := category == "" || p.Category == category
					lowOK := !low || p.CurrentStock <= p.MinStock
					if nameOK && catOK && lowOK {
						want = append(want, p.ID)
					}
				}
				got := ids(s.ListProducts(models.ProductFilter{Search: search, Category: category, LowStock: low}))
				if len(want) == 0 {
					want = []string{}
				}
				assert.Equal(t, want, got, "search=%q category=%q low=%v", search, category, low)
			}
		}
	}
}

func TestLowStockBoundary(t *testing.T) {
	s := New(nil, nil, nil)
	s.CreateProduct(models.Product{NameEnglish: "equal", CurrentStock: 10, MinStock: 10})
	s.CreateProduct(models.Product{NameEnglish: "above", CurrentStock: 11, MinStock: 10})
	s.CreateProduct(models.Product{NameEnglish: "below", CurrentStock: 9, MinStock: 10})

	got := s.ListProducts(models.ProductFilter{LowStock: true})
	require.Len(t, got, 2)
	assert.Equal(t, "equal", got[0].NameEnglish)
	assert.Equal(t, "below", got[1].NameEnglish)
}

func TestGetProduct(t *testing.T) {
	s := NewSeeded()

	p, err := s.GetProduct("3")
	require.NoError(t, err)
	assert.Equal(t, "Parle-G Biscuits", p.NameEnglish)

	_, err = s.GetProduct("999")
	assert.True(t, errors.Is(err, ErrProductNotFound))

	_, err = s.GetProduct("")
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestCreateProduct(t *testing.T) {
	s := NewSeeded()

	created := s.CreateProduct(models.Product{
		ID:            "1",
		NameHindi:     "हल्दीराम भुजिया",
		NameEnglish:   "Haldiram Bhujia",
		Category:      "पैक खाद्य",
		PurchasePrice: 40,
		SellingPrice:  50,
		MRP:           50,
		CurrentStock:  12,
		MinStock:      6,
		MarginPercent: 25,
	})
	assert.Equal(t, "11", created.ID)
	assert.Equal(t, 25.0, created.MarginPercent)

	got, err := s.GetProduct("11")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	first, err := s.GetProduct("1")
	require.NoError(t, err)
	assert.Equal(t, "Tata Salt 1kg", first.NameEnglish)

	explicit := s.CreateProduct(models.Product{PurchasePrice: 10, SellingPrice: 20, MarginPercent: 33.3})
	assert.Equal(t, "12", explicit.ID)
	assert.Equal(t, 33.3, explicit.MarginPercent)

	zero := s.CreateProduct(models.Product{PurchasePrice: 10, SellingPrice: 20})
	assert.Equal(t, "13", zero.ID)
	assert.Equal(t, 0.0, zero.MarginPercent)
}

func TestListReturnsCopies(t *testing.T) {
	s := NewSeeded()

	products := s.ListProducts(models.ProductFilter{})
	products[0].NameEnglish = "changed"
	customers := s.ListCustomers()
	customers[0].TotalOutstanding = 0
	sales := s.ListSales()
	sales[0].TotalAmount = 0

	p, _ := s.GetProduct("1")
	assert.Equal(t, "Tata Salt 1kg", p.NameEnglish)
	assert.Equal(t, 2500.0, s.ListCustomers()[0].TotalOutstanding)
	assert.Equal(t, 350.0, s.ListSales()[0].TotalAmount)
}

func TestCreateSale(t *testing.T) {
	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	items := []models.SaleItem{{Quantity: 2, UnitPrice: 50}, {Quantity: 1, UnitPrice: 25}}

	t.Run("cash", func(t *testing.T) {
		s := NewSeeded(WithClock(func() time.Time { return now }))
		sale := s.CreateSale(models.CreateSaleInput{Items: items, PaymentMode: "CASH"})

		assert.Equal(t, "4", sale.ID)
		assert.Equal(t, "BILL-004", sale.BillNumber)
		assert.Equal(t, now, sale.Date)
		assert.Equal(t, models.WalkInCustomer, sale.CustomerName)
		assert.Nil(t, sale.CustomerID)
		assert.Equal(t, 125.0, sale.TotalAmount)
		assert.Equal(t, 125.0, sale.PaidAmount)
		assert.Equal(t, 0.0, sale.CreditAmount)
		assert.Equal(t, 2, sale.ItemsCount)
		assert.Len(t, s.ListSales(), 4)
	})

	t.Run("credit", func(t *testing.T) {
		s := NewSeeded()
		sale := s.CreateSale(models.CreateSaleInput{Items: items, PaymentMode: "CREDIT", CustomerName: "अनिता देवी"})

		assert.Equal(t, 125.0, sale.TotalAmount)
		assert.Equal(t, 0.0, sale.PaidAmount)
		assert.Equal(t, 125.0, sale.CreditAmount)
		assert.Equal(t, "अनिता देवी", sale.CustomerName)
		assert.Nil(t, sale.CustomerID)
	})

	t.Run("unknown mode is paid", func(t *testing.T) {
		s := NewSeeded()
		sale := s.CreateSale(models.CreateSaleInput{Items: items, PaymentMode: "CHEQUE"})
		assert.Equal(t, 125.0, sale.PaidAmount)
		assert.Equal(t, 0.0, sale.CreditAmount)
	})

	t.Run("no items", func(t *testing.T) {
		s := NewSeeded()
		sale := s.CreateSale(models.CreateSaleInput{PaymentMode: "UPI"})
		assert.Equal(t, 0.0, sale.TotalAmount)
		assert.Equal(t, 0, sale.ItemsCount)
	})
}

func TestSalePaymentInvariant(t *testing.T) {
	s := NewSeeded()
	modes := []string{"CASH", "UPI", "CREDIT", "", "card"}
	for i := 0; i < 50; i++ {
		s.CreateSale(models.CreateSaleInput{
			Items:       []models.SaleItem{{Quantity: float64(i%7 + 1), UnitPrice: float64(i*3) + 0.5}},
			PaymentMode: modes[i%len(modes)],
		})
	}
	for _, sale := range s.ListSales() {
		assert.Equal(t, sale.TotalAmount, sale.PaidAmount+sale.CreditAmount, "sale %s", sale.ID)
	}
}

func TestConcurrentCreatesGetUniqueIDs(t *testing.T) {
	s := NewSeeded()
	const n = 200

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			s.CreateProduct(models.Product{NameEnglish: fmt.Sprintf("p%d", i)})
		}(i)
		go func() {
			defer wg.Done()
			s.CreateSale(models.CreateSaleInput{Items: []models.SaleItem{{Quantity: 1, UnitPrice: 10}}})
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, p := range s.Products() {
		require.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 10+n)

	bills := map[string]bool{}
	for _, sale := range s.ListSales() {
		require.False(t, bills[sale.BillNumber], "duplicate bill %s", sale.BillNumber)
		bills[sale.BillNumber] = true
	}
	assert.Len(t, bills, 3+n)
}
