package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Sizes       []string  `json:"sizes"`
	Images      []string  `json:"image"`
	Bestseller  bool      `json:"bestseller"`
	CreatedAt   time.Time `json:"createdAt"`
}
