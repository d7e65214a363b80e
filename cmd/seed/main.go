// seed puebla la base con datos de demostración: un usuario admin, tres
// clientes y cinco facturas. Es idempotente: si ya hay facturas no vuelve a
// insertarlas.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dahill/invoice-api/internal/domain/entity"
	"github.com/dahill/invoice-api/internal/domain/repository"
	"github.com/dahill/invoice-api/internal/infrastructure/postgres"
	"github.com/dahill/invoice-api/pkg/config"
	"github.com/dahill/invoice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// Usuario admin (password: admin123)
	if existing, err := userRepo.FindByUsername(ctx, "admin"); err != nil {
		log.Fatal().Err(err).Msg("buscar usuario admin")
	} else if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		admin := &entity.User{
			ID:           uuid.New().String(),
			Username:     "admin",
			Email:        "admin@dahill.com",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("username", admin.Username).Msg("usuario admin creado")
	}

	// Si ya hay facturas, el dataset ya fue sembrado.
	existing, err := invoiceRepo.Count(ctx, repository.InvoiceFilter{})
	if err != nil {
		log.Fatal().Err(err).Msg("contar facturas")
	}
	if existing > 0 {
		log.Info().Int64("invoices", existing).Msg("datos de demo ya presentes, nada que hacer")
		return
	}

	customers := []*entity.Customer{
		{
			Name:        "John Smith",
			Address:     "123 Main St, New York, NY 10001",
			Phone:       "+1-555-0123",
			Email:       "john.smith@email.com",
			JobLocation: "Manhattan Office Building",
		},
		{
			Name:        "Sarah Johnson",
			Address:     "456 Oak Ave, Los Angeles, CA 90210",
			Phone:       "+1-555-0456",
			Email:       "sarah.johnson@email.com",
			JobLocation: "Downtown LA Warehouse",
		},
		{
			Name:        "Michael Brown",
			Address:     "789 Pine Rd, Chicago, IL 60601",
			Phone:       "+1-555-0789",
			Email:       "michael.brown@email.com",
			JobLocation: "Chicago Industrial Park",
		},
	}
	for _, c := range customers {
		if err := customerRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("crear cliente")
		}
	}
	log.Info().Int("customers", len(customers)).Msg("clientes de demo creados")

	invoices := []*entity.Invoice{
		{
			Date:        date(2024, 1, 15),
			Description: "Website Development Services",
			Amount:      decimal.NewFromFloat(2500.00),
			Note:        "Initial payment for website development project",
			CustomerID:  customers[0].ID,
		},
		{
			Date:        date(2024, 1, 20),
			Description: "Office Renovation Work",
			Amount:      decimal.NewFromFloat(4800.50),
			Note:        "Phase one of the renovation contract",
			CustomerID:  customers[1].ID,
		},
		{
			Date:        date(2024, 2, 5),
			Description: "HVAC System Installation",
			Amount:      decimal.NewFromFloat(7250.00),
			CustomerID:  customers[2].ID,
		},
		{
			Date:        date(2024, 2, 18),
			Description: "Monthly Maintenance Services",
			Amount:      decimal.NewFromFloat(950.00),
			Note:        "Recurring maintenance for February",
			CustomerID:  customers[0].ID,
		},
		{
			Date:        date(2024, 3, 2),
			Description: "Electrical Wiring Inspection",
			Amount:      decimal.NewFromFloat(1340.75),
			CustomerID:  customers[1].ID,
		},
	}
	for _, inv := range invoices {
		if err := invoiceRepo.Create(ctx, inv); err != nil {
			log.Fatal().Err(err).Str("description", inv.Description).Msg("crear factura")
		}
	}
	log.Info().Int("invoices", len(invoices)).Msg("facturas de demo creadas")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
