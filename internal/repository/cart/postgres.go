package cart

import (
	"context"
	"io"
	"log"

	"forever-commerce/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	// LEFT JOIN: a deleted product leaves the line in place with a nil
	// Product, which the caller renders with a fallback.
	const q = `
SELECT cl.product_id::text, cl.quantity, cl.selected_size, cl.price, cl.created_at,
       p.id::text,
       COALESCE(p.name, ''), COALESCE(p.description, ''), COALESCE(p.price, 0),
       COALESCE(p.category, ''), COALESCE(p.sub_category, ''),
       COALESCE(p.sizes, '{}'), COALESCE(p.images, '{}'),
       COALESCE(p.bestseller, false), COALESCE(p.created_at, cl.created_at)
FROM cart_lines cl
LEFT JOIN products p ON p.id = cl.product_id
WHERE cl.user_id = $1
ORDER BY cl.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("cart repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		var p domain.Product
		var productID *string
		if err := rows.Scan(
			&item.ProductID,
			&item.Quantity,
			&item.SelectedSize,
			&item.Price,
			&item.CreatedAt,
			&productID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.SubCategory,
			&p.Sizes,
			&p.Images,
			&p.Bestseller,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if productID != nil {
			p.ID = *productID
			item.Product = &p
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("cart repo: list rows user_id=%s error=%v", userID, err)
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) UpsertLine(ctx context.Context, userID string, line domain.CartLine) error {
	// Single-statement merge on the (user, product, size) slot. The DO
	// UPDATE keeps cart_lines.price, so the first-add price snapshot
	// survives later merges, and concurrent adds cannot lose updates.
	const q = `
INSERT INTO cart_lines (user_id, product_id, quantity, selected_size, price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, product_id, selected_size)
DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity
`
	_, err := r.pool.Exec(ctx, q, userID, line.ProductID, line.Quantity, domain.NormalizeSize(line.SelectedSize), line.Price)
	if err != nil {
		r.logger.Printf("cart repo: upsert user_id=%s product_id=%s error=%v", userID, line.ProductID, err)
	}
	return err
}

func (r *postgresRepo) SetQuantity(ctx context.Context, userID, productID, selectedSize string, quantity int) error {
	const q = `
UPDATE cart_lines
SET quantity = $4
WHERE user_id = $1 AND product_id = $2 AND selected_size = $3
`
	cmd, err := r.pool.Exec(ctx, q, userID, productID, domain.NormalizeSize(selectedSize), quantity)
	if err != nil {
		r.logger.Printf("cart repo: set quantity user_id=%s product_id=%s error=%v", userID, productID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteLine(ctx context.Context, userID, productID, selectedSize string) error {
	const q = `
DELETE FROM cart_lines
WHERE user_id = $1 AND product_id = $2 AND selected_size = $3
`
	cmd, err := r.pool.Exec(ctx, q, userID, productID, domain.NormalizeSize(selectedSize))
	if err != nil {
		r.logger.Printf("cart repo: delete user_id=%s product_id=%s error=%v", userID, productID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
