package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MikhailEmv/SmartBudget/internal/config"
	"github.com/MikhailEmv/SmartBudget/internal/database"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/MikhailEmv/SmartBudget/internal/services"
)

type AccountImport struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

var (
	importFile string
	strictMode bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import accounts from JSON file",
	Long: `Import account balances from a JSON file.

Expected JSON format:
[
  {"email": "user@example.com", "name": "Cash", "balance": "120.50"},
  {"email": "user@example.com", "name": "Card", "balance": "0.00"}
]

By default rows with unknown users, bad balances, or duplicate account
names are skipped. Use --strict to fail on the first invalid row instead.`,
	Example: `  smartbudget import -f accounts.json
  smartbudget import --file accounts.json --strict`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "JSON file to import (required)")
	importCmd.Flags().BoolVar(&strictMode, "strict", false, "Fail on any validation error")
	importCmd.MarkFlagRequired("file")
}

func runImport() error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var rows []AccountImport
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	accountService := services.NewAccountService(accountRepo)

	log.Printf("Starting import of %d accounts from %s", len(rows), importFile)

	imported, skipped, err := importRows(rows, userRepo, accountService, strictMode)
	if err != nil {
		return err
	}

	log.Printf("Import complete: imported %d, skipped %d", imported, skipped)
	return nil
}

// importRows applies rows one by one. Invalid rows are skipped and
// counted; with strict set the first invalid row aborts the import.
func importRows(rows []AccountImport, userRepo *repository.UserRepository, accountService *services.AccountService, strict bool) (imported, skipped int, err error) {
	for _, row := range rows {
		if err := importAccount(row, userRepo, accountService); err != nil {
			if strict {
				return imported, skipped, fmt.Errorf("import failed for %s/%s: %w", row.Email, row.Name, err)
			}
			log.Printf("Skipped %s/%s: %v", row.Email, row.Name, err)
			skipped++
			continue
		}
		imported++
	}
	return imported, skipped, nil
}

func importAccount(row AccountImport, userRepo *repository.UserRepository, accountService *services.AccountService) error {
	if row.Name == "" {
		return fmt.Errorf("empty account name")
	}

	balance, err := decimal.NewFromString(row.Balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q", row.Balance)
	}

	user, err := userRepo.FindByEmail(row.Email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("no user with email %s", row.Email)
	}

	if _, err := accountService.Create(user.ID, row.Name, balance, ""); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	log.Printf("Imported %s/%s with balance %s", row.Email, row.Name, balance.StringFixed(2))
	return nil
}
