package controllers

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"mit-market/models"
	"mit-market/repositories"
)

type ProductController struct {
	Products *repositories.ProductRepository
}

// categorySlug is the storefront's URL form of a category name: lowercased,
// spaces replaced with dashes.
func categorySlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// @Summary Get all products
// @Description List catalog products, optionally filtered by category slug
// @Tags Products
// @Produce json
// @Param category query string false "Category slug, e.g. home-decor"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.Products.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	category := c.Query("category")
	if category != "" && category != "all" {
		filtered := []models.Product{}
		for _, p := range products {
			if categorySlug(p.Category) == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products retrieved",
		"data":    products,
	})
}

// @Summary Get product by ID
// @Description Get a single catalog product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := ctrl.Products.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(502, gin.H{"success": false, "message": "Failed to load product"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data":    product,
	})
}

// @Summary Get categories
// @Description List the distinct categories present in the catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	products, err := ctrl.Products.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load categories"})
		return
	}

	seen := map[string]bool{}
	categories := []gin.H{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, gin.H{
			"name": p.Category,
			"slug": categorySlug(p.Category),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i]["name"].(string) < categories[j]["name"].(string)
	})

	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved",
		"data":    categories,
	})
}

// @Summary Get product comments
// @Description List comments left on a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /products/{id}/comments [get]
func (ctrl *ProductController) GetComments(c *gin.Context) {
	id := c.Param("id")

	comments, err := ctrl.Products.GetComments(c.Request.Context(), id)
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load comments"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Comments retrieved",
		"data":    comments,
	})
}
