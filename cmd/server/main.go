package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vesture-be/internal/address"
	"vesture-be/internal/api"
	"vesture-be/internal/cart"
	"vesture-be/internal/config"
	"vesture-be/internal/coupon"
	"vesture-be/internal/db"
	"vesture-be/internal/logger"
	"vesture-be/internal/messaging"
	"vesture-be/internal/order"
	"vesture-be/internal/product"
	"vesture-be/internal/user"

	"go.uber.org/zap"
)

type repos struct {
	user    user.Repository
	product product.Repository
	cart    cart.Store
	coupon  coupon.Repository
	address address.Repository
	order   order.Repository
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	r, cleanup := buildRepos(cfg, log)
	defer cleanup()

	var publisher order.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := messaging.NewProducer(cfg.KafkaBrokers, cfg.OrdersTopic)
		defer producer.Close()
		publisher = producer
		log.Info("order events enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	userSvc := user.NewService(r.user)
	productSvc := product.NewService(r.product)
	cartSvc := cart.NewService(r.cart, r.product)
	couponSvc := coupon.NewService(r.coupon)
	addressSvc := address.NewService(r.address)
	orderSvc := order.NewService(r.order, cartSvc, couponSvc, publisher)

	router := api.NewRouter(api.Handlers{
		User:    user.NewHandler(userSvc),
		Product: product.NewHandler(productSvc),
		Cart:    cart.NewHandler(cartSvc),
		Coupon:  coupon.NewHandler(couponSvc),
		Address: address.NewHandler(addressSvc),
		Order:   order.NewHandler(orderSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("listen failed", zap.Error(err))
	}

	<-idleConnsClosed
	log.Info("server stopped")
}

// buildRepos probes postgres once at startup. When the probe fails every
// repository falls back to the JSON file store under cfg.DataDir; the
// choice is made here and never revisited per request.
func buildRepos(cfg *config.Config, log *zap.Logger) (repos, func()) {
	database, err := db.Connect(cfg)
	if err == nil {
		log.Info("using postgres storage", zap.String("host", cfg.DBHost))
		return repos{
			user:    user.NewRepository(database),
			product: product.NewRepository(database),
			cart:    cart.NewRepository(database),
			coupon:  coupon.NewRepository(database),
			address: address.NewRepository(database),
			order:   order.NewRepository(database),
		}, func() { database.Close() }
	}

	log.Warn("postgres unreachable, falling back to file store",
		zap.String("data_dir", cfg.DataDir),
		zap.Error(err),
	)

	userRepo, err := user.NewFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}
	productRepo, err := product.NewFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}
	cartStore, err := cart.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}
	couponRepo, err := coupon.NewFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}
	addressRepo, err := address.NewFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}
	orderRepo, err := order.NewFileRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("file store init failed", zap.Error(err))
	}

	return repos{
		user:    userRepo,
		product: productRepo,
		cart:    cartStore,
		coupon:  couponRepo,
		address: addressRepo,
		order:   orderRepo,
	}, func() {}
}
