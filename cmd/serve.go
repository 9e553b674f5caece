package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cancelTableBookingHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/cancel_table_booking"
	createMenuItemHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/create_menu_item"
	createOrderHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/create_order"
	createTableBookingHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/create_table_booking"
	createUserHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/create_user"
	deleteMenuItemHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/delete_menu_item"
	deleteOrderHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/delete_order"
	deleteUserHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/delete_user"
	getMenuImageHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/get_menu_image"
	getOrderHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/get_order"
	getSalesReportHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/get_sales_report"
	getTableBookingHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/get_table_booking"
	healthHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/health"
	listMenuHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/list_menu"
	listOrdersHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/list_orders"
	listPendingOrdersHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/list_pending_orders"
	listTableBookingsHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/list_table_bookings"
	listUsersHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/login"
	updateOrderStatusHandler "github.com/m04kA/SMC-POSService/internal/api/handlers/update_order_status"
	"github.com/m04kA/SMC-POSService/internal/api/middleware"
	"github.com/m04kA/SMC-POSService/internal/config"
	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/booking"
	menuRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/menu"
	orderRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/order"
	salesRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/sales"
	userRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/user"
	"github.com/m04kA/SMC-POSService/internal/integrations/kitchen"
	bookingsService "github.com/m04kA/SMC-POSService/internal/service/bookings"
	menuService "github.com/m04kA/SMC-POSService/internal/service/menu"
	ordersService "github.com/m04kA/SMC-POSService/internal/service/orders"
	salesService "github.com/m04kA/SMC-POSService/internal/service/sales"
	usersService "github.com/m04kA/SMC-POSService/internal/service/users"
	createOrderUC "github.com/m04kA/SMC-POSService/internal/usecase/create_order"
	createTableBookingUC "github.com/m04kA/SMC-POSService/internal/usecase/create_table_booking"
	updateOrderStatusUC "github.com/m04kA/SMC-POSService/internal/usecase/update_order_status"
	"github.com/m04kA/SMC-POSService/migrations"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/logger"
	"github.com/m04kA/SMC-POSService/pkg/metrics"
	"github.com/m04kA/SMC-POSService/pkg/migrator"
	"github.com/m04kA/SMC-POSService/pkg/txmanager"
)

// kitchenPublisher события заказов для кухни
type kitchenPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
}

func newServeCmd(configPath *string) *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			return serve(cmd.Context(), cfg, log, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", true, "применить миграции перед запуском")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, autoMigrate bool) error {
	log.Info("Starting SMC-POSService...")

	// Подключаемся к базе данных
	sqlDB, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer sqlDB.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Метрики и обёртка БД
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	var db *dbmetrics.DB
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		db = dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		db = dbmetrics.Wrap(sqlDB, nil, cfg.Metrics.ServiceName)
	}

	if autoMigrate {
		applied, err := migrator.New(db, migrations.FS, log).Up(ctx)
		if err != nil {
			log.Error("Migration failed: %v", err)
			return err
		}
		log.Info("Migrations applied: %d", applied)
	}

	txMgr := txmanager.NewTransactionManager(db,
		txmanager.WithTimeout(time.Duration(cfg.Database.QueryTimeout)*time.Second))

	// Кэш (Redis опционален)
	var redisClient redis.Cmdable
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("Redis is unavailable, cache will degrade to misses: %v", err)
		}
		redisClient = client
		log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}
	appCache := cache.New(redisClient, time.Duration(cfg.Redis.TTL)*time.Second, log)

	// Публикация событий для кухни (RabbitMQ опционален)
	var publisher kitchenPublisher = kitchen.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		conn, err := kitchen.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Error("%v", err)
			return err
		}
		defer conn.Close()

		publisher = kitchen.NewPublisher(conn.Channel, cfg.RabbitMQ.Exchange, log)
		log.Info("Kitchen events enabled (exchange=%s)", cfg.RabbitMQ.Exchange)
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	orderRepository := orderRepo.NewRepository(db)
	menuRepository := menuRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)
	salesRepository := salesRepo.NewRepository(db)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	orderSvc := ordersService.NewService(orderRepository, txMgr, appCache, log)
	menuSvc := menuService.NewService(menuRepository, txMgr, appCache, log)
	userSvc := usersService.NewService(userRepository, txMgr, log)
	salesSvc := salesService.NewService(salesRepository, txMgr, appCache, log)

	// Use cases
	createTableBookingUseCase := createTableBookingUC.NewUseCase(bookingRepository, txMgr, log)
	createOrderUseCase := createOrderUC.NewUseCase(orderRepository, txMgr, publisher, appCache, log)
	updateOrderStatusUseCase := updateOrderStatusUC.NewUseCase(orderRepository, txMgr, publisher, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.AccessLog(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler.NewHandler(db, appCache, log).Handle).Methods(http.MethodGet)

	registerAPI(r, apiHandlers{
		createTableBooking: createTableBookingHandler.NewHandler(createTableBookingUseCase, log),
		listTableBookings:  listTableBookingsHandler.NewHandler(bookingSvc, log),
		getTableBooking:    getTableBookingHandler.NewHandler(bookingSvc, log),
		cancelTableBooking: cancelTableBookingHandler.NewHandler(bookingSvc, log),

		createOrder:       createOrderHandler.NewHandler(createOrderUseCase, log),
		listOrders:        listOrdersHandler.NewHandler(orderSvc, log),
		listPendingOrders: listPendingOrdersHandler.NewHandler(orderSvc, log),
		getOrder:          getOrderHandler.NewHandler(orderSvc, log),
		updateOrderStatus: updateOrderStatusHandler.NewHandler(updateOrderStatusUseCase, log),
		deleteOrder:       deleteOrderHandler.NewHandler(orderSvc, log),

		salesReport: getSalesReportHandler.NewHandler(salesSvc, log),

		listMenu:       listMenuHandler.NewHandler(menuSvc, log),
		createMenuItem: createMenuItemHandler.NewHandler(menuSvc, log, int64(cfg.Server.MaxUploadSizeMB)<<20),
		getMenuImage:   getMenuImageHandler.NewHandler(menuSvc, log),
		deleteMenuItem: deleteMenuItemHandler.NewHandler(menuSvc, log),

		createUser: createUserHandler.NewHandler(userSvc, log),
		listUsers:  listUsersHandler.NewHandler(userSvc, log),
		deleteUser: deleteUserHandler.NewHandler(userSvc, log),
		login:      loginHandler.NewHandler(userSvc, log),
	})

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown по сигналу или падению сервера
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("%v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
