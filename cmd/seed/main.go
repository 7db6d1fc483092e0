// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"officex/internal/domain/customer"
	"officex/internal/domain/location"
	"officex/internal/domain/taxonomy"
	"officex/internal/domain/user"
	"officex/internal/infrastructure/storage/postgres"
	"officex/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	if err := seedUsers(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed users", "error", err)
	}
	if err := seedLocations(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed locations", "error", err)
	}
	if err := seedTaxonomy(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed taxonomy", "error", err)
	}
	if err := seedCustomers(ctx, txManager, log); err != nil {
		log.Fatalw("failed to seed customers", "error", err)
	}

	log.Info("seeding complete")
}

func seedUsers(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewUserRepo(txManager)

	seeds := []struct {
		coUserID  string
		firstName string
		lastName  string
		role      user.Role
		password  string
	}{
		{"CO-0001", "Grace", "Mwangi", user.RoleManager, getEnv("SEED_MANAGER_PASSWORD", "changeme-now")},
		{"CO-0002", "Peter", "Odhiambo", user.RoleEmployee, getEnv("SEED_EMPLOYEE_PASSWORD", "changeme-now")},
	}

	for _, s := range seeds {
		existing, err := repo.GetByCoUserID(ctx, s.coUserID)
		if err != nil {
			return fmt.Errorf("check user %s: %w", s.coUserID, err)
		}
		if existing != nil {
			log.Infow("user already seeded", "co_user_id", s.coUserID)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		u := user.NewUser(s.coUserID, s.firstName, s.lastName, s.role)
		u.PasswordHash = string(hash)
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", s.coUserID, err)
		}
		log.Infow("user seeded", "co_user_id", s.coUserID, "role", s.role.String())
	}
	return nil
}

func seedLocations(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewLocationRepo(txManager)

	existing, err := repo.List(ctx, location.Filter{Types: []location.Type{location.TypeMainStore}})
	if err != nil {
		return fmt.Errorf("check main store: %w", err)
	}
	if len(existing) > 0 {
		log.Info("locations already seeded")
		return nil
	}

	main := location.NewLocation("Main Store", location.TypeMainStore)
	if err := repo.Create(ctx, main); err != nil {
		return fmt.Errorf("create main store: %w", err)
	}

	branch := location.NewLocation("Westlands Branch", location.TypeBranch)
	branch.ParentID = &main.ID
	if err := repo.Create(ctx, branch); err != nil {
		return fmt.Errorf("create branch: %w", err)
	}

	point := location.NewLocation("Westlands Stock Room", location.TypeInventoryPoint)
	point.ParentID = &branch.ID
	if err := repo.Create(ctx, point); err != nil {
		return fmt.Errorf("create inventory point: %w", err)
	}

	log.Infow("locations seeded", "main_store", main.ID, "branch", branch.ID, "inventory_point", point.ID)
	return nil
}

func seedTaxonomy(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewTaxonomyRepo(txManager)

	for _, name := range []string{"Stationery", "Electronics", "Cleaning"} {
		exists, err := repo.CategoryExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check category %s: %w", name, err)
		}
		if exists {
			continue
		}
		if err := repo.CreateCategory(ctx, taxonomy.NewCategory(name)); err != nil {
			return fmt.Errorf("create category %s: %w", name, err)
		}
	}

	for _, name := range []string{"urgent", "fragile", "bulk"} {
		exists, err := repo.TagExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check tag %s: %w", name, err)
		}
		if exists {
			continue
		}
		if err := repo.CreateTag(ctx, taxonomy.NewTag(name)); err != nil {
			return fmt.Errorf("create tag %s: %w", name, err)
		}
	}

	log.Info("taxonomy seeded")
	return nil
}

func seedCustomers(ctx context.Context, txManager *postgres.TxManager, log *logger.Logger) error {
	repo := postgres.NewCustomerRepo(txManager)

	existing, err := repo.List(ctx, customer.Filter{Search: "Acme", Limit: 1})
	if err != nil {
		return fmt.Errorf("check customers: %w", err)
	}
	if len(existing) > 0 {
		log.Info("customers already seeded")
		return nil
	}

	c := customer.NewCustomer("Acme Supplies Ltd")
	email := "orders@acme-supplies.example"
	c.Email = &email
	if err := repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}

	log.Infow("customers seeded", "customer", c.ID)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
