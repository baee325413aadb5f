package main

import (
	"context"
	"os"
	"time"

	appconfig "supplierhub/internal/config"
	"supplierhub/internal/domain/sqlite"
	"supplierhub/internal/domain/sqlite/repository"
	handler2 "supplierhub/internal/http/handler"
	cognitoclient "supplierhub/internal/infrastructure/aws/cognito"
	"supplierhub/internal/infrastructure/aws/storage"
	"supplierhub/internal/infrastructure/erpnext"
	"supplierhub/internal/infrastructure/kycapi"
	"supplierhub/internal/service"
	"supplierhub/internal/service/jobs"
	"supplierhub/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/supplierhub/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	}
	if err := appconfig.Load(); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Init S3 client
	s3Client, err := storage.NewStorageClient()
	if err != nil {
		panic(err)
	}

	// Outbound HTTP clients
	erpClient := erpnext.NewClient(appconfig.Cfg.ERPBaseURL, appconfig.Cfg.ERPAPIKey, appconfig.Cfg.ERPAPISecret)
	kycClient := kycapi.NewClient(appconfig.Cfg.KYCBaseURL, appconfig.Cfg.KYCToken)

	node, err := snowflake.NewNode(appconfig.Cfg.SnowflakeNodeID)
	if err != nil {
		panic(err)
	}

	// Gettings repos
	sessionRepo := repository.NewSessionRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Getting services
	onboardingService := service.NewOnboardingService(sessionRepo, attachmentRepo, verificationRepo, s3Client, validate)
	verificationService := service.NewVerificationService(
		verificationRepo,
		sessionRepo,
		kycClient,
		validate,
		node,
		time.Duration(appconfig.Cfg.VerifyDebounceMillis)*time.Millisecond,
	)
	submissionService := service.NewSubmissionService(onboardingService, erpClient)
	accountService := service.NewAccountService(accountRepo, validate, cogClient)

	// Gettings handler
	onboardingRoutes := handler2.NewOnboardingDefault(onboardingService)
	verificationRoutes := handler2.NewVerificationDefault(verificationService)
	submissionRoutes := handler2.NewSubmissionDefault(submissionService, onboardingService)
	accountRoutes := handler2.NewAccountDefault(accountService)

	// Background cleanup of abandoned sessions
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleaner := jobs.NewSessionCleaner(sessionRepo, attachmentRepo, verificationRepo, s3Client, appconfig.Cfg.SessionMaxIdleHours)
	go cleaner.Start(ctx)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("6M"))

	// Onboarding wizard
	e.GET("/api/onboarding/:supplier", onboardingRoutes.GetSession)
	e.PATCH("/api/onboarding/:supplier/sections/:section", onboardingRoutes.UpdateSection)
	e.POST("/api/onboarding/:supplier/steps/next", onboardingRoutes.NextStep)
	e.POST("/api/onboarding/:supplier/steps/previous", onboardingRoutes.PreviousStep)
	e.POST("/api/onboarding/:supplier/steps/goto", onboardingRoutes.GoToStep)
	e.POST("/api/onboarding/:supplier/acknowledge", onboardingRoutes.Acknowledge)
	e.POST("/api/onboarding/:supplier/attachments/:kind", onboardingRoutes.UploadAttachment)
	e.DELETE("/api/onboarding/:supplier/distributors/:id", onboardingRoutes.RemoveDistributor)

	// Verification
	e.POST("/api/onboarding/:supplier/verify/:field", verificationRoutes.Verify)
	e.GET("/api/onboarding/:supplier/verify/:field", verificationRoutes.VerifyStatus)

	// Submission and agreement
	e.POST("/api/onboarding/:supplier/submit", submissionRoutes.Submit)
	e.GET("/api/onboarding/:supplier/agreement", submissionRoutes.DownloadAgreement)

	// Accounts
	e.POST("/api/accounts", accountRoutes.Signup)
	e.GET("/api/accounts/:supplier", accountRoutes.SignupStatus)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":" + appconfig.Cfg.ServerPort); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("pan", validators.PAN)
	_ = validate.RegisterValidation("gstin", validators.GSTIN)
	_ = validate.RegisterValidation("ifsc", validators.IFSC)
	_ = validate.RegisterValidation("digits10", validators.TenDigits)
	_ = validate.RegisterValidation("pincode", validators.Pincode)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
