package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	Price       float64
	Category    string
	SubCategory string
	Sizes       []string
	Images      []string
	Bestseller  bool
}

// Apply inserts basic seed data for manual testing. It is safe to rerun.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureSeller(ctx, pool, "seller@forever.dev", "sellerpass123"); err != nil {
		return fmt.Errorf("ensure seller: %w", err)
	}

	products := []productSeed{
		{
			Name:        "Women Round Neck Cotton Top",
			Description: "Lightweight knitted top with a round neckline",
			Price:       15.3,
			Category:    "Women",
			SubCategory: "Topwear",
			Sizes:       []string{"S", "M", "L"},
			Images:      []string{"https://res.cloudinary.com/demo/image/upload/p_img1.png"},
			Bestseller:  true,
		},
		{
			Name:        "Men Tapered Fit Flat-Front Trousers",
			Description: "Mid-rise trousers with a tapered leg",
			Price:       32.0,
			Category:    "Men",
			SubCategory: "Bottomwear",
			Sizes:       []string{"M", "L", "XL"},
			Images:      []string{"https://res.cloudinary.com/demo/image/upload/p_img2.png"},
		},
		{
			Name:        "Kids Printed Hooded Sweatshirt",
			Description: "Fleece-lined hoodie with front print",
			Price:       24.5,
			Category:    "Kids",
			SubCategory: "Winterwear",
			Sizes:       []string{"S", "M"},
			Images:      []string{"https://res.cloudinary.com/demo/image/upload/p_img3.png"},
		},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureSeller(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (first_name, last_name, email, password_hash, is_seller)
VALUES ('Demo', 'Seller', $1, $2, TRUE)
ON CONFLICT (email) DO UPDATE SET is_seller = TRUE
`
	_, err = pool.Exec(ctx, q, email, string(hash))
	return err
}

// insertProduct skips products that already exist by name; product names
// carry no unique constraint, so the guard keeps reruns from duplicating.
func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, category, sub_category, sizes, images, bestseller)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.Category, p.SubCategory, p.Sizes, p.Images, p.Bestseller)
	return err
}
