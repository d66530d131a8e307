package handlers

import (
	"munshiji/database"
	"munshiji/logger"
	"munshiji/models"
	"munshiji/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// HandleListProducts lists the catalog, filtered by the optional search,
// category and low_stock query parameters.
// GET /api/v1/products
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	filter := models.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		LowStock: c.Query("low_stock") == "true",
	}
	products := h.store.ListProducts(filter)

	return utils.Success(c, fiber.StatusOK, "Products fetched", "उत्पाद सूची", fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleGetProduct returns a single product.
// GET /api/v1/products/:id
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.store.GetProduct(c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			return utils.Error(c, fiber.StatusNotFound, "Product not found", "उत्पाद नहीं मिला")
		}
		return err
	}

	return utils.Success(c, fiber.StatusOK, "Product fetched", "उत्पाद मिला", fiber.Map{"product": product})
}

// productInput tells a missing margin_percent apart from an explicit zero.
type productInput struct {
	models.Product
	MarginPercent *float64 `json:"margin_percent"`
}

// HandleCreateProduct adds a product. The body is stored as sent apart from
// the id, which the store assigns. A missing margin_percent is derived from
// the prices.
// POST /api/v1/products
func (h *Handler) HandleCreateProduct(c *fiber.Ctx) error {
	var input productInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	product := input.Product
	if input.MarginPercent != nil {
		product.MarginPercent = *input.MarginPercent
	} else {
		product.MarginPercent = utils.MarginPercent(product.PurchasePrice, product.SellingPrice)
	}

	product = h.store.CreateProduct(product)
	logger.FromFiber(c).Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.NameEnglish),
	)

	return utils.Success(c, fiber.StatusCreated, "Product created", "उत्पाद बनाया गया", fiber.Map{"product": product})
}
