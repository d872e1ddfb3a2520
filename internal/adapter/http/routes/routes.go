package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	_ "contractor_escrow/docs"
	"contractor_escrow/internal/adapter/http/handlers"
	"contractor_escrow/internal/adapter/http/middleware"
	repository "contractor_escrow/internal/adapter/persistence/repository"
	"contractor_escrow/internal/config"
	"contractor_escrow/internal/infrastructure/database"
	"contractor_escrow/internal/infrastructure/ledger"
	"contractor_escrow/internal/infrastructure/metrics"
	"contractor_escrow/internal/infrastructure/payments"
	"contractor_escrow/internal/infrastructure/storage"
	"contractor_escrow/internal/usecase"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var errMissingJWTSecret = errors.New("JWT_SECRET is required")

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Projects *handlers.ProjectHandler
	Deposits *handlers.DepositHandler
	Bookings *handlers.BookingHandler
	Cases    *handlers.CaseHandler
}

// Run will start the server
func Run(cfg config.Config) {
	ctx := context.Background()

	h, cleanup, err := buildHandlers(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer cleanup()

	router, err := NewRouter(h, []byte(cfg.JWTSecret))
	if err != nil {
		log.Fatalf("Failed to build the router: %v", err)
	}

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the public routes, the metrics and swagger endpoints and the authenticated /v1 API.
func NewRouter(h Handlers, jwtSecret []byte) (*gin.Engine, error) {
	if len(jwtSecret) == 0 {
		return nil, errMissingJWTSecret
	}

	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Auth(jwtSecret))
	addProjectRoutes(authed, h.Projects, h.Deposits, h.Bookings)
	addDepositRoutes(authed, h.Deposits)
	addAdminRoutes(authed, h.Cases)

	return router, nil
}

func buildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	cleanup := func() {}

	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return Handlers{}, cleanup, err
	}
	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDBEndpoint)

	projectRepo := repository.NewProjectDynamoRepository(ddb, cfg.Tables.Projects)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	depositRepo := repository.NewEstimateDepositDynamoRepository(ddb, cfg.Tables.Deposits)
	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.Tables.Bookings)
	caseRepo := repository.NewDisputeCaseDynamoRepository(ddb, cfg.Tables.Cases)

	var settlementLedger interfaces.ISettlementLedger
	if strings.TrimSpace(cfg.LedgerDSN) == "" {
		log.Printf("[settlement][wiring] LEDGER_DB_SOURCE not set; settlement instructions stay in memory")
		settlementLedger = ledger.NewMemoryLedger()
	} else {
		pool, err := ledger.Connect(ctx, cfg.LedgerDSN)
		if err != nil {
			return Handlers{}, cleanup, fmt.Errorf("settlement ledger: %w", err)
		}
		cleanup = pool.Close
		settlementLedger = ledger.NewPostgresLedger(pool)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken: cfg.MercadoPagoAccessToken,
		Mock:        cfg.PaymentGatewayMock,
		Timeout:     cfg.PaymentTimeout,
	})
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var documentStore interfaces.IDocumentStore
	s3Client := database.ConnectS3(awsCfg, cfg.S3Endpoint)
	docs, err := storage.NewS3DocumentStore(s3.NewPresignClient(s3Client), cfg.DocumentsBucket, cfg.AWSRegion, cfg.S3Endpoint, cfg.DocumentUploadTTL)
	if err != nil {
		log.Printf("Resolution document store not configured: %v", err)
	} else {
		documentStore = docs
	}

	policy := NewPolicy(cfg)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo, depositRepo, caseRepo, settlementLedger, paymentGateway, policy)
	depositUseCase := usecase.NewEstimateDepositUseCase(projectRepo, depositRepo, settlementLedger, paymentGateway, policy)
	bookingUseCase := usecase.NewBookingUseCase(projectRepo, depositRepo, bookingRepo)
	disputeUseCase := usecase.NewDisputeUseCase(caseRepo, projectRepo, settlementLedger, documentStore, policy)

	return Handlers{
		Projects: handlers.NewProjectHandler(projectUseCase),
		Deposits: handlers.NewDepositHandler(depositUseCase),
		Bookings: handlers.NewBookingHandler(bookingUseCase),
		Cases:    handlers.NewCaseHandler(disputeUseCase),
	}, cleanup, nil
}

// NewPolicy applies the configured overrides on top of the default fee and deposit tables.
func NewPolicy(cfg config.Config) usecase.Policy {
	policy := usecase.DefaultPolicy()
	policy.Deposits = policy.Deposits.WithOverrides(cfg.DepositAmounts)
	policy.Deposits.CaptureTTL = cfg.DepositCaptureTTL
	if cfg.DocReferencePrefix != "" {
		policy.DocReferencePrefix = cfg.DocReferencePrefix
	}
	policy.TestPayerEmail = cfg.TestPayerEmail
	return policy
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
