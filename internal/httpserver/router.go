package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"forever-commerce/internal/domain"
	cartsvc "forever-commerce/internal/service/cart"
	catalogsvc "forever-commerce/internal/service/catalog"
	customersvc "forever-commerce/internal/service/customer"
	ordersvc "forever-commerce/internal/service/order"
)

// CustomerService is the slice of the customer service the router needs.
type CustomerService interface {
	Register(ctx context.Context, in customersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	VerifyToken(token string) (string, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
	BecomeSeller(ctx context.Context, userID string) (*domain.User, error)
}

// CatalogService serves the public product listing and the seller pipeline.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	AddProduct(ctx context.Context, in catalogsvc.AddProductInput, images []catalogsvc.ImageFile) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// CartService serves the per-user shopping cart.
type CartService interface {
	Fetch(ctx context.Context, userID string) ([]domain.CartItem, error)
	Add(ctx context.Context, userID string, in cartsvc.AddInput) ([]domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int, selectedSize string) ([]domain.CartItem, error)
	Remove(ctx context.Context, userID, productID, selectedSize string) ([]domain.CartItem, error)
}

// OrderService serves checkout and order history.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, in ordersvc.PlaceInput) (string, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}

// Deps bundles the services the router depends on.
type Deps struct {
	CustomerSvc CustomerService
	CatalogSvc  CatalogService
	CartSvc     CartService
	OrderSvc    OrderService
	// TokenTTL controls the session cookie lifetime.
	TokenTTL time.Duration
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, frontendOrigin string) (*gin.Engine, error) {
	if deps.CustomerSvc == nil || deps.CatalogSvc == nil || deps.CartSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	user := api.Group("/user")
	user.POST("/register", registerHandler(deps))
	user.POST("/login", loginHandler(deps))
	user.POST("/logout", logoutHandler)
	user.GET("/auth", authRequired(deps.CustomerSvc), currentUserHandler(deps.CustomerSvc))
	user.PATCH("/become-seller", authRequired(deps.CustomerSvc), becomeSellerHandler(deps.CustomerSvc))

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

	cart := api.Group("/cart", authRequired(deps.CustomerSvc))
	cart.GET("", fetchCartHandler(deps.CartSvc))
	cart.POST("", addToCartHandler(deps.CartSvc))
	cart.PUT("/:productId", updateCartHandler(deps.CartSvc))
	cart.DELETE("/:productId", removeFromCartHandler(deps.CartSvc))

	orders := api.Group("/orders", authRequired(deps.CustomerSvc))
	orders.POST("", placeOrderHandler(deps.OrderSvc))
	orders.GET("", listOrdersHandler(deps.OrderSvc))

	seller := api.Group("/seller", authRequired(deps.CustomerSvc), sellerRequired(deps.CustomerSvc))
	seller.POST("/add-products", addProductsHandler(deps.CatalogSvc))
	seller.GET("/all-products", allProductsHandler(deps.CatalogSvc))
	seller.DELETE("/delete-product/:id", deleteProductHandler(deps.CatalogSvc))

	return router, nil
}
