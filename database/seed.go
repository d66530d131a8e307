package database

import (
	"time"

	"munshiji/models"
)

// SeedProducts returns the demo catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "1", NameHindi: "टाटा नमक 1kg", NameEnglish: "Tata Salt 1kg", Category: "अनाज", PurchasePrice: 18, MRP: 20, SellingPrice: 20, CurrentStock: 45, MinStock: 20, MarginPercent: 11.1, GSTRate: 0},
		{ID: "2", NameHindi: "सुर्या तेल 1L", NameEnglish: "Surya Oil 1L", Category: "तेल", PurchasePrice: 118, MRP: 140, SellingPrice: 140, CurrentStock: 12, MinStock: 15, MarginPercent: 18.6, GSTRate: 5},
		{ID: "3", NameHindi: "पारले-जी बिस्कुट", NameEnglish: "Parle-G Biscuits", Category: "बिस्कुट", PurchasePrice: 8, MRP: 10, SellingPrice: 10, CurrentStock: 87, MinStock: 30, MarginPercent: 25, GSTRate: 12},
		{ID: "4", NameHindi: "अमूल दूध 1L", NameEnglish: "Amul Milk 1L", Category: "डेयरी", PurchasePrice: 52, MRP: 58, SellingPrice: 58, CurrentStock: 24, MinStock: 20, MarginPercent: 11.5, GSTRate: 0},
		{ID: "5", NameHindi: "ब्रिटानिया ब्रेड", NameEnglish: "Britannia Bread", Category: "बेकरी", PurchasePrice: 32, MRP: 40, SellingPrice: 40, CurrentStock: 15, MinStock: 10, MarginPercent: 25, GSTRate: 0},
		{ID: "6", NameHindi: "कोलगेट टूथपेस्ट", NameEnglish: "Colgate Toothpaste", Category: "व्यक्तिगत देखभाल", PurchasePrice: 75, MRP: 95, SellingPrice: 95, CurrentStock: 22, MinStock: 15, MarginPercent: 26.7, GSTRate: 18},
		{ID: "7", NameHindi: "लक्स साबुन", NameEnglish: "Lux Soap", Category: "व्यक्तिगत देखभाल", PurchasePrice: 28, MRP: 35, SellingPrice: 35, CurrentStock: 45, MinStock: 30, MarginPercent: 25, GSTRate: 18},
		{ID: "8", NameHindi: "सर्फ एक्सेल 1kg", NameEnglish: "Surf Excel 1kg", Category: "घर की देखभाल", PurchasePrice: 165, MRP: 200, SellingPrice: 200, CurrentStock: 8, MinStock: 10, MarginPercent: 21.2, GSTRate: 18},
		{ID: "9", NameHindi: "मैगी नूडल्स", NameEnglish: "Maggi Noodles", Category: "पैक खाद्य", PurchasePrice: 10, MRP: 14, SellingPrice: 14, CurrentStock: 65, MinStock: 40, MarginPercent: 40, GSTRate: 12},
		{ID: "10", NameHindi: "कोका-कोला 1L", NameEnglish: "Coca-Cola 1L", Category: "पेय", PurchasePrice: 35, MRP: 45, SellingPrice: 45, CurrentStock: 28, MinStock: 25, MarginPercent: 28.6, GSTRate: 12},
	}
}

// SeedCustomers returns the demo customer directory.
func SeedCustomers() []models.Customer {
	return []models.Customer{
		{ID: "1", Name: "राजेश कुमार", Phone: "+91-9999900001", Address: "गांधी नगर, पटना", TotalOutstanding: 2500, CreditLimit: 10000, DaysOverdue: 15, TotalVisits: 45},
		{ID: "2", Name: "सुरेश शर्मा", Phone: "+91-9999900002", Address: "बोरिंग रोड, पटना", TotalOutstanding: 1200, CreditLimit: 5000, DaysOverdue: 8, TotalVisits: 28},
		{ID: "3", Name: "अनिता देवी", Phone: "+91-9999900003", Address: "कंकड़बाग, पटना", TotalOutstanding: 800, CreditLimit: 3000, DaysOverdue: 3, TotalVisits: 62},
		{ID: "4", Name: "मनोज यादव", Phone: "+91-9999900004", Address: "पटना सिटी", TotalOutstanding: 0, CreditLimit: 8000, DaysOverdue: 0, TotalVisits: 89},
		{ID: "5", Name: "प्रिया सिंह", Phone: "+91-9999900005", Address: "राजेंद्र नगर", TotalOutstanding: 3200, CreditLimit: 15000, DaysOverdue: 22, TotalVisits: 34},
	}
}

// SeedSales returns the demo bills, all from 15 January 2024.
func SeedSales() []models.Sale {
	rajesh, suresh := "1", "2"
	return []models.Sale{
		{ID: "1", BillNumber: "BILL-001", Date: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), CustomerName: "राजेश कुमार", CustomerID: &rajesh, TotalAmount: 350, PaidAmount: 0, CreditAmount: 350, PaymentMode: models.PaymentModeCredit, ItemsCount: 5},
		{ID: "2", BillNumber: "BILL-002", Date: time.Date(2024, 1, 15, 11, 15, 0, 0, time.UTC), CustomerName: models.WalkInCustomer, CustomerID: nil, TotalAmount: 125, PaidAmount: 125, CreditAmount: 0, PaymentMode: models.PaymentModeCash, ItemsCount: 3},
		{ID: "3", BillNumber: "BILL-003", Date: time.Date(2024, 1, 15, 14, 20, 0, 0, time.UTC), CustomerName: "सुरेश शर्मा", CustomerID: &suresh, TotalAmount: 580, PaidAmount: 580, CreditAmount: 0, PaymentMode: models.PaymentModeUPI, ItemsCount: 8},
	}
}
