package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/jrwalden/clientdesk/internal/auth"
	"github.com/jrwalden/clientdesk/internal/client"
	clientStore "github.com/jrwalden/clientdesk/internal/client/store"
	"github.com/jrwalden/clientdesk/internal/config"
	"github.com/jrwalden/clientdesk/internal/contract"
	contractStore "github.com/jrwalden/clientdesk/internal/contract/store"
	"github.com/jrwalden/clientdesk/internal/database"
	"github.com/jrwalden/clientdesk/internal/export"
	deskHttp "github.com/jrwalden/clientdesk/internal/http"
	clientHandler "github.com/jrwalden/clientdesk/internal/http/client"
	contractHandler "github.com/jrwalden/clientdesk/internal/http/contract"
	exportHandler "github.com/jrwalden/clientdesk/internal/http/export"
	importHandler "github.com/jrwalden/clientdesk/internal/http/importcsv"
	invoiceHandler "github.com/jrwalden/clientdesk/internal/http/invoice"
	meetingHandler "github.com/jrwalden/clientdesk/internal/http/meeting"
	profileHandler "github.com/jrwalden/clientdesk/internal/http/profile"
	projectHandler "github.com/jrwalden/clientdesk/internal/http/project"
	reportHandler "github.com/jrwalden/clientdesk/internal/http/report"
	"github.com/jrwalden/clientdesk/internal/importer"
	"github.com/jrwalden/clientdesk/internal/invoice"
	invoiceStore "github.com/jrwalden/clientdesk/internal/invoice/store"
	"github.com/jrwalden/clientdesk/internal/meeting"
	meetingStore "github.com/jrwalden/clientdesk/internal/meeting/store"
	"github.com/jrwalden/clientdesk/internal/profile"
	profileStore "github.com/jrwalden/clientdesk/internal/profile/store"
	"github.com/jrwalden/clientdesk/internal/project"
	projectStore "github.com/jrwalden/clientdesk/internal/project/store"
	"github.com/jrwalden/clientdesk/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		clientService   = client.NewService(clientStore.New())
		invoiceService  = invoice.NewService(invoiceStore.New(), clientService, cfg.Invoice.NumberPrefix, decimal.NewFromFloat(cfg.Invoice.TaxRate))
		projectService  = project.NewService(projectStore.New())
		contractService = contract.NewService(contractStore.New())
		meetingService  = meeting.NewService(meetingStore.New())
		profileService  = profile.NewService(profileStore.New(db))
		importService   = importer.NewService()
		exportService   = export.NewService(invoiceService, cfg.Invoice.Currency)
		reportService   = report.NewService(clientService, invoiceService, projectService, contractService, meetingService)
	)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	router := deskHttp.New(verifier, deskHttp.Handlers{
		Clients:   clientHandler.NewHandler(clientService),
		Invoices:  invoiceHandler.NewHandler(invoiceService),
		Projects:  projectHandler.NewHandler(projectService),
		Contracts: contractHandler.NewHandler(contractService),
		Meetings:  meetingHandler.NewHandler(meetingService),
		Reports:   reportHandler.NewHandler(reportService),
		Profile:   profileHandler.NewHandler(profileService),
		Import:    importHandler.NewHandler(importService, clientService),
		Export:    exportHandler.NewHandler(exportService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
