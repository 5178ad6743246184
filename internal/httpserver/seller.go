package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	catalogsvc "forever-commerce/internal/service/catalog"
)

// addProductsHandler accepts a multipart form: text fields for the
// product payload plus up to four image files under image1..image4.
func addProductsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := catalogsvc.AddProductInput{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
			Category:    c.PostForm("category"),
			SubCategory: c.PostForm("subCategory"),
		}

		if raw := c.PostForm("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				badRequest(c, "price must be a number")
				return
			}
			in.Price = &price
		}
		if raw := c.PostForm("bestseller"); raw != "" {
			in.Bestseller = raw == "true"
		}
		if raw := c.PostForm("sizes"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &in.Sizes); err != nil {
				// tolerate a plain comma-separated list too
				in.Sizes = strings.Split(raw, ",")
			}
		}

		images, err := collectImages(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		defer func() {
			for _, img := range images {
				if closer, ok := img.Reader.(interface{ Close() error }); ok {
					closer.Close()
				}
			}
		}()

		product, err := catalog.AddProduct(c.Request.Context(), in, images)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}

func collectImages(c *gin.Context) ([]catalogsvc.ImageFile, error) {
	var images []catalogsvc.ImageFile
	for i := 1; i <= 4; i++ {
		header, err := c.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			continue
		}
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", header.Filename, err)
		}
		images = append(images, catalogsvc.ImageFile{Name: header.Filename, Reader: f})
	}
	return images, nil
}

func allProductsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

func deleteProductHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
	}
}
