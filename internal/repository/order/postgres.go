package order

import (
	"context"
	"io"
	"log"

	"forever-commerce/internal/domain"
	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (string, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (user_id, address_id, total_amount, payment_method, payment_status, order_status)
VALUES ($1, $2, $3, $4, 'pending', 'processing')
RETURNING id::text
`, in.UserID, in.AddressID, in.TotalAmount, in.PaymentMethod).Scan(&orderID)
	if err != nil {
		r.logger.Printf("order repo: create user_id=%s error=%v", in.UserID, err)
		return "", err
	}

	for _, line := range in.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, product_id, quantity, selected_size, price, snapshot)
VALUES ($1, $2, $3, $4, $5, $6)
`, orderID, line.ProductID, line.Quantity, domain.NormalizeSize(line.SelectedSize), line.Price, line.Snapshot); err != nil {
			r.logger.Printf("order repo: create line order_id=%s product_id=%s error=%v", orderID, line.ProductID, err)
			return "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	r.logger.Printf("order repo: created id=%s user_id=%s lines=%d", orderID, in.UserID, len(in.Lines))
	return orderID, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const ordersQuery = `
SELECT o.id::text, o.user_id::text, o.address_id::text, o.total_amount, o.payment_method, o.payment_status, o.order_status, o.created_at,
       a.id::text, a.user_id::text, a.first_name, a.last_name, a.address_line1, COALESCE(a.address_line2, ''), a.city, a.state, a.country, a.zip_code, a.phone_number, a.is_default, a.created_at
FROM orders o
JOIN addresses a ON a.id = o.address_id
WHERE o.user_id = $1
`
	rows, err := r.pool.Query(ctx, ordersQuery, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := map[string]int{}
	var ids []string
	for rows.Next() {
		var o domain.Order
		var a domain.Address
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.AddressID, &o.TotalAmount, &o.PaymentMethod, &o.PaymentStatus, &o.OrderStatus, &o.CreatedAt,
			&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.AddressLine1, &a.AddressLine2, &a.City, &a.State, &a.Country, &a.ZipCode, &a.PhoneNumber, &a.IsDefault, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Address = &a
		o.Items = []domain.OrderLine{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	const linesQuery = `
SELECT ol.id::text, ol.order_id::text, ol.product_id::text, ol.quantity, ol.selected_size, ol.price, ol.snapshot,
       p.id::text,
       COALESCE(p.name, ''), COALESCE(p.description, ''), COALESCE(p.price, 0),
       COALESCE(p.category, ''), COALESCE(p.sub_category, ''),
       COALESCE(p.sizes, '{}'), COALESCE(p.images, '{}'),
       COALESCE(p.bestseller, false), COALESCE(p.created_at, ol.created_at)
FROM order_lines ol
LEFT JOIN products p ON p.id = ol.product_id
WHERE ol.order_id = ANY($1)
ORDER BY ol.created_at ASC
`
	lineRows, err := r.pool.Query(ctx, linesQuery, ids)
	if err != nil {
		r.logger.Printf("order repo: list lines user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var line domain.OrderLine
		var orderID string
		var p domain.Product
		var productID *string
		if err := lineRows.Scan(
			&line.ID,
			&orderID,
			&line.ProductID,
			&line.Quantity,
			&line.SelectedSize,
			&line.Price,
			&line.Snapshot,
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
			line.Product = &p
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
