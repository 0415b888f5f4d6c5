package main

import (
	"time"

	"github.com/jmoiron/sqlx"

	"gstpro/internal/config"
	"gstpro/internal/logger"
	"gstpro/internal/nic"
	"gstpro/internal/pdf"
	"gstpro/internal/repository/postgres"
	"gstpro/internal/service"
)

// newInvoiceService wires the full service stack against the configured
// database. The caller owns closing the returned DB handle.
func newInvoiceService(cfg *config.Config) (service.InvoiceService, *sqlx.DB, error) {
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	renderer := pdf.NewRenderer(pdf.Config{
		EnginePath: cfg.PDF.EnginePath,
		Timeout:    time.Duration(cfg.PDF.TimeoutSecs) * time.Second,
		PageSize:   cfg.PDF.PageSize,
	}, logger.WithComponent("pdf"))

	svc := service.NewInvoiceService(
		postgres.NewBusinessProfileRepo(db),
		postgres.NewCustomerRepo(db),
		postgres.NewProductRepo(db),
		postgres.NewInvoiceRepo(db),
		renderer,
		nic.NewExporter(cfg.Invoice.DefaultStateCode),
		logger.WithComponent("invoice"),
	)
	return svc, db, nil
}
