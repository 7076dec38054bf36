package main

import (
	"context"
	"fmt"
	"log"

	"taxdesk/internal/config"
	"taxdesk/internal/email/noop"
	"taxdesk/internal/email/ses"
	"taxdesk/internal/handler"
	"taxdesk/internal/port"
	"taxdesk/internal/repository/postgres"
	"taxdesk/internal/router"
	"taxdesk/internal/service"
	s3storage "taxdesk/internal/storage/s3"
	"taxdesk/internal/tds"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	deducteeRepo := postgres.NewDeducteeRepo(db)
	complianceRepo := postgres.NewComplianceRepo(db)
	voucherRepo := postgres.NewVoucherRepo(db)
	tdsReturnRepo := postgres.NewTDSReturnRepo(db)
	tdsSectionRepo := postgres.NewTDSSectionRepo(db)
	kvRepo := postgres.NewKVRepo(db)

	// Load the TDS section rate master once at startup. An empty master
	// only disables the rate cross-check, so a failure here is not fatal.
	entries, err := tdsSectionRepo.LoadAll(context.Background())
	if err != nil {
		log.Printf("warning: could not load TDS section master: %v", err)
	}
	sections := tds.NewSectionLookup(entries)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	calcSvc := service.NewCalculatorService()
	deducteeSvc := service.NewDeducteeService(deducteeRepo, sections)
	complianceSvc := service.NewComplianceService(complianceRepo, emailSender)
	matchingSvc := service.NewMatchingService(voucherRepo)
	cmaSvc := service.NewCMAService(kvRepo, s3Client, &cfg.S3)
	tdsReturnSvc := service.NewTDSReturnService(tdsReturnRepo)

	// Initialize handlers
	healthH := handler.NewHealthHandler(db)
	calcH := handler.NewCalculatorHandler(calcSvc)
	deducteeH := handler.NewDeducteeHandler(deducteeSvc)
	complianceH := handler.NewComplianceHandler(complianceSvc, cfg.Email.ToAddress)
	matchingH := handler.NewMatchingHandler(matchingSvc)
	cmaH := handler.NewCMAHandler(cmaSvc)
	tdsReturnH := handler.NewTDSReturnHandler(tdsReturnSvc)

	// Setup router
	r := router.Setup(cfg, healthH, calcH, deducteeH, complianceH, matchingH, cmaH, tdsReturnH)

	log.Printf("Server starting on %s (base URL %s)", cfg.Server.Port, cfg.API.BaseURL)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
