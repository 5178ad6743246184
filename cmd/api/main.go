package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"forever-commerce/internal/config"
	"forever-commerce/internal/db"
	"forever-commerce/internal/httpserver"
	"forever-commerce/internal/imagestore"
	addressrepo "forever-commerce/internal/repository/address"
	cartrepo "forever-commerce/internal/repository/cart"
	orderrepo "forever-commerce/internal/repository/order"
	productrepo "forever-commerce/internal/repository/product"
	userrepo "forever-commerce/internal/repository/user"
	cartsvc "forever-commerce/internal/service/cart"
	catalogsvc "forever-commerce/internal/service/catalog"
	customersvc "forever-commerce/internal/service/customer"
	ordersvc "forever-commerce/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	addressRepo := addressrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	var uploader catalogsvc.Uploader
	if cfg.CloudinaryURL != "" {
		uploader, err = imagestore.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			logger.Fatalf("init image store: %v", err)
		}
	} else {
		logger.Printf("CLOUDINARY_URL not set, product image uploads disabled")
	}

	customerService := customersvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := catalogsvc.New(productRepo, uploader)
	cartService := cartsvc.New(cartRepo, userRepo)
	orderService := ordersvc.New(orderRepo, addressRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		TokenTTL:    cfg.TokenTTL,
	}, cfg.FrontendOrigin)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}
