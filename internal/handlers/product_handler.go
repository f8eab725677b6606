package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes. writeGuards run before the
// mutating routes only; reads stay public.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, writeGuards ...fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", guarded(writeGuards, h.HandleCreateProduct)...)
	productRoutes.Patch("/:id", guarded(writeGuards, h.HandleUpdateProduct)...)
	productRoutes.Delete("/:id", guarded(writeGuards, h.HandleDeleteProduct)...)
}

func guarded(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, handler)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input := models.NewCreateProduct()
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, err)
	}
	if err := validateStruct(h.validate, input); err != nil {
		return badRequest(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProducts lists products with filtering, sorting and pagination.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	var filter models.ProductFilter
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, err)
	}
	pagination := models.DefaultPagination()
	if err := c.QueryParser(&pagination); err != nil {
		return badRequest(c, err)
	}

	if err := validateStruct(h.validate, filter); err != nil {
		return badRequest(c, err)
	}
	if err := validateStruct(h.validate, pagination); err != nil {
		return badRequest(c, err)
	}
	pagination = pagination.Normalize()

	page, err := h.service.GetProducts(c.UserContext(), filter, pagination)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, err)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, err)
	}

	var input models.UpdateProduct
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, err)
	}
	if err := validateStruct(h.validate, input); err != nil {
		return badRequest(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return badRequest(c, err)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
	})
}

func productID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, &ValidationError{Fields: map[string]string{"id": "must be a positive integer"}}
	}
	return uint(id), nil
}
