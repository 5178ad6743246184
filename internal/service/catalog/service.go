package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"forever-commerce/internal/domain"
)

// maximum images accepted per product upload
const maxImages = 4

// Service is the catalog: read-only lookups for the storefront plus the
// seller pipeline that creates and deletes products. Products are never
// updated in place.
type Service struct {
	repo   productRepo
	images Uploader
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// Uploader pushes raw image bytes to the external image host and returns
// the public URL. The catalog only ever stores final URLs.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

func New(repo productRepo, images Uploader) *Service {
	return &Service{repo: repo, images: images}
}

// List returns the full product catalog.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Get returns a single product or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// AddProductInput carries the seller-submitted product payload.
type AddProductInput struct {
	Name        string
	Description string
	Price       *float64
	Category    string
	SubCategory string
	Sizes       []string
	Bestseller  bool
}

// ImageFile is one uploaded image, streamed to the image host.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// AddProduct uploads the images and persists the product with the
// returned URLs.
func (s *Service) AddProduct(ctx context.Context, in AddProductInput, images []ImageFile) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.SubCategory) == "" ||
		in.Price == nil ||
		len(in.Sizes) == 0 {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrInvalidInput)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: at least one image required", domain.ErrInvalidInput)
	}
	if len(images) > maxImages {
		return nil, fmt.Errorf("%w: at most %d images allowed", domain.ErrInvalidInput, maxImages)
	}
	if s.images == nil {
		return nil, fmt.Errorf("image uploads not configured")
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.images.Upload(ctx, img.Name, img.Reader)
		if err != nil {
			return nil, fmt.Errorf("upload image %s: %w", img.Name, err)
		}
		urls = append(urls, url)
	}

	return s.repo.Create(ctx, domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Sizes:       in.Sizes,
		Images:      urls,
		Bestseller:  in.Bestseller,
	})
}

// DeleteProduct removes the catalog row. It does not cascade: existing
// cart lines and historical orders keep their (now dangling) references.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
