package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/service"
)

// GetProducts dispatches on query parameters: ?id= wins, then ?search=,
// then ?filter=1 with criteria, else the full catalog.
func (h HandlerSet) GetProducts(c *gin.Context) {
	switch {
	case c.Query("id") != "":
		h.getProduct(c)
	case c.Query("search") != "":
		h.searchProducts(c)
	case c.Query("filter") != "":
		h.filterProducts(c)
	default:
		h.listProducts(c)
	}
}

func (h HandlerSet) listProducts(c *gin.Context) {
	products, err := h.catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": h.failureMessage("Unable to fetch products", err)})
		return
	}

	// An empty catalog answers 404. Odd, but the storefront depends on it
	// to trigger its built-in fallback list.
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h HandlerSet) getProduct(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		return
	}

	product, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": h.failureMessage("Unable to fetch product", err)})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h HandlerSet) searchProducts(c *gin.Context) {
	products, err := h.catalog.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": h.failureMessage("Unable to search products", err)})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching the search criteria."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h HandlerSet) filterProducts(c *gin.Context) {
	filter := models.ProductFilter{
		Processor: c.Query("processor"),
		RAM:       c.Query("ram"),
		Graphics:  c.Query("graphics"),
		Storage:   c.Query("storage"),
		Purpose:   c.Query("purpose"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products, err := h.catalog.Filter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": h.failureMessage("Unable to filter products", err)})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching the filter criteria."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// productInputFromRequest reads a product payload from either a multipart
// form (the admin UI, possibly with a product_image file) or a JSON body.
func (h HandlerSet) productInputFromRequest(c *gin.Context) (service.ProductInput, bool) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") ||
		contentType == "application/x-www-form-urlencoded" {
		input := service.ProductInput{
			Name:      c.PostForm("name"),
			Processor: c.PostForm("processor"),
			RAM:       c.PostForm("ram"),
			Graphics:  c.PostForm("graphics"),
			Storage:   c.PostForm("storage"),
			Purpose:   c.PostForm("purpose"),
			Price:     c.PostForm("price"),
			Image:     c.PostForm("image"),
			Specs:     c.PostForm("specs"),
			Tag:       c.PostForm("tag"),
		}

		file, header, err := c.Request.FormFile("product_image")
		if err == nil {
			defer file.Close()
		}
		if err == nil && h.images != nil {
			url, err := h.images.Save(c.Request.Context(), file, header)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return service.ProductInput{}, false
			}
			input.Image = url
		} else if input.Image == "" {
			input.Image = service.DefaultImagePath
		}

		return input, true
	}

	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON data"})
		return service.ProductInput{}, false
	}

	return service.ProductInput{
		Name:      anyString(payload["name"]),
		Processor: anyString(payload["processor"]),
		RAM:       anyString(payload["ram"]),
		Graphics:  anyString(payload["graphics"]),
		Storage:   anyString(payload["storage"]),
		Purpose:   anyString(payload["purpose"]),
		Price:     anyString(payload["price"]),
		Image:     anyString(payload["image"]),
		Specs:     anyString(payload["specs"]),
		Tag:       anyString(payload["tag"]),
	}, true
}

func (h HandlerSet) CreateProduct(c *gin.Context) {
	// Multipart forms cannot send PUT, so the admin UI tunnels updates
	// through POST with a _method field.
	if c.PostForm("_method") == "PUT" && c.Query("id") != "" {
		h.UpdateProduct(c)
		return
	}

	input, ok := h.productInputFromRequest(c)
	if !ok {
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), input)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			resp := gin.H{"message": ve.Message}
			if len(ve.MissingFields) > 0 {
				resp["missing_fields"] = ve.MissingFields
			}
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": h.failureMessage("Unable to create product. Database error.", err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product was created successfully.",
		"id":      product.ID,
		"product": gin.H{
			"id":    product.ID,
			"name":  product.Name,
			"price": product.Price,
		},
	})
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required for update."})
		return
	}

	input, ok := h.productInputFromRequest(c)
	if !ok {
		return
	}

	if err := h.catalog.Update(c.Request.Context(), id, input); err != nil {
		if _, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to update product. Data is incomplete."})
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": h.failureMessage("Unable to update product.", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product was updated."})
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product ID is required for delete."})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": h.failureMessage("Unable to delete product.", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product was deleted."})
}
