package routes

import (
	"context"
	"fmt"
	"log"
	_ "polyforge/docs" // generated by swag init
	"polyforge/internal/adapter/http/handlers"
	"polyforge/internal/adapter/persistence/repository"
	"polyforge/internal/infrastructure/ai"
	"polyforge/internal/infrastructure/config"
	"polyforge/internal/infrastructure/database"
	"polyforge/internal/infrastructure/metrics"
	"polyforge/internal/infrastructure/payments"
	"polyforge/internal/infrastructure/qrcode"
	"polyforge/internal/usecase"
	"polyforge/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Checkout *handlers.CheckoutHandler
	Receipt  *handlers.ReceiptHandler
	Admin    *handlers.AdminHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()

	h, cleanup, err := BuildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer cleanup()

	router := NewRouter(h)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, h)
	addPrintRoutes(router, h.Receipt)

	return router
}

// BuildHandlers wires repositories, gateways and use cases from cfg. The
// returned cleanup closes whatever the ledger backend opened.
func BuildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	ledger, cleanup, err := newOrderLedger(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	catalog := repository.NewCatalogMemoryRepository(repository.DefaultProducts(nil))
	checkouts := repository.NewCheckoutMemoryRepository()
	register := payments.NewSimulatedCashRegister(cfg.CashVerifyDelay)
	model := newShopkeeperModel(ctx, cfg)

	catalogUseCase := usecase.NewCatalogUseCase(catalog)
	checkoutUseCase := usecase.NewCheckoutUseCase(catalog, checkouts, ledger, register, model)
	receiptUseCase := usecase.NewReceiptUseCase(ledger, qrcode.NewQRServer(cfg.QRServiceURL))
	adminUseCase := usecase.NewAdminUseCase(ledger, cfg.AdminAccessCode)

	return Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUseCase),
		Checkout: handlers.NewCheckoutHandler(checkoutUseCase),
		Receipt:  handlers.NewReceiptHandler(receiptUseCase, cfg.PrintSettleDelay),
		Admin:    handlers.NewAdminHandler(adminUseCase),
	}, cleanup, nil
}

func newOrderLedger(ctx context.Context, cfg config.Config) (interfaces.IOrderLedger, func(), error) {
	noop := func() {}

	switch cfg.LedgerBackend {
	case "", config.LedgerBackendMemory:
		log.Printf("[ledger] backend=memory")
		return repository.NewOrderMemoryLedger(), noop, nil
	case config.LedgerBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[ledger] backend=dynamodb")
		return repository.NewOrderDynamoLedger(ddb), noop, nil
	case config.LedgerBackendBolt:
		l, err := repository.NewOrderBoltLedger(cfg.LedgerBoltPath)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[ledger] backend=bolt path=%s", cfg.LedgerBoltPath)
		return l, func() {
			if err := l.Close(); err != nil {
				log.Printf("[ledger][bolt] close failed err=%v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown LEDGER_BACKEND %q", cfg.LedgerBackend)
	}
}

// newShopkeeperModel returns nil when no model can be built; the checkout
// then runs on the offline fallbacks.
func newShopkeeperModel(ctx context.Context, cfg config.Config) interfaces.IShopkeeperModel {
	if cfg.ShopkeeperMock {
		log.Printf("[shopkeeper] mock mode enabled")
		return ai.MockShopkeeper{}
	}

	gemini, err := ai.NewGeminiShopkeeper(ctx, ai.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		log.Printf("[shopkeeper] model not configured, free requests will be denied err=%v", err)
		return nil
	}
	return gemini
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.GinMiddleware())
}
