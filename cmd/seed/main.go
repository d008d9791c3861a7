// Command seed loads the historical dataset (tab-separated CSV exports) into
// the database. Files are looked up in the directory given by -dir; a missing
// file is skipped so partial datasets can be loaded.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"CreditCtrl/config"
	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/dictionary"
	"CreditCtrl/internal/domain/payment"
	"CreditCtrl/internal/domain/plan"
	"CreditCtrl/internal/domain/user"
	"CreditCtrl/internal/infrastructure"
	"CreditCtrl/internal/logger"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const datasetDateLayout = "02.01.2006"

func main() {
	dir := flag.String("dir", "content", "directory with the dataset csv files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("could not load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg)

	db, err := infrastructure.NewDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	loaders := []struct {
		file  string
		table string
		load  func(*gorm.DB, string) (int, error)
	}{
		{"users.csv", "users", loadUsers},
		{"dictionary.csv", "dictionaries", loadDictionaries},
		{"credits.csv", "credits", loadCredits},
		{"payments.csv", "payments", loadPayments},
		{"plans.csv", "plans", loadPlans},
	}

	for _, l := range loaders {
		path := filepath.Join(*dir, l.file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			logger.Warn().Str("file", path).Msg("dataset file not found, skipping")
			continue
		}

		n, err := l.load(db, path)
		if err != nil {
			logger.Fatal().Err(err).Str("file", path).Msg("failed to load dataset file")
		}
		if err := resetSequence(db, l.table); err != nil {
			logger.Fatal().Err(err).Str("table", l.table).Msg("failed to reset id sequence")
		}
		logger.Info().Str("file", l.file).Int("rows", n).Msg("dataset file loaded")
	}
}

func loadUsers(db *gorm.DB, path string) (int, error) {
	var users []user.User
	err := readRows(path, func(row map[string]string) error {
		id, err := parseUint(row["id"])
		if err != nil {
			return err
		}
		registered, err := time.Parse(datasetDateLayout, row["registration_date"])
		if err != nil {
			return err
		}
		users = append(users, user.User{
			ID:               id,
			Login:            row["login"],
			RegistrationDate: registered,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(users), insertBatch(db, users)
}

// loadDictionaries tolerates rows that already exist: NewDB seeds the
// reference categories into an empty database before the loaders run, and the
// dataset file carries the same ids and names.
func loadDictionaries(db *gorm.DB, path string) (int, error) {
	var rows []dictionary.Dictionary
	err := readRows(path, func(row map[string]string) error {
		id, err := parseUint(row["id"])
		if err != nil {
			return err
		}
		rows = append(rows, dictionary.Dictionary{ID: id, Name: row["name"]})
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

func loadCredits(db *gorm.DB, path string) (int, error) {
	var credits []credit.Credit
	err := readRows(path, func(row map[string]string) error {
		id, err := parseUint(row["id"])
		if err != nil {
			return err
		}
		userID, err := parseUint(row["user_id"])
		if err != nil {
			return err
		}
		issuance, err := time.Parse(datasetDateLayout, row["issuance_date"])
		if err != nil {
			return err
		}
		returnDate, err := time.Parse(datasetDateLayout, row["return_date"])
		if err != nil {
			return err
		}
		var actualReturn *time.Time
		if v := strings.TrimSpace(row["actual_return_date"]); v != "" {
			parsed, err := time.Parse(datasetDateLayout, v)
			if err != nil {
				return err
			}
			actualReturn = &parsed
		}
		body, err := decimal.NewFromString(row["body"])
		if err != nil {
			return err
		}
		percent, err := decimal.NewFromString(row["percent"])
		if err != nil {
			return err
		}
		credits = append(credits, credit.Credit{
			ID:               id,
			UserID:           userID,
			IssuanceDate:     issuance,
			ReturnDate:       returnDate,
			ActualReturnDate: actualReturn,
			Body:             body,
			Percent:          percent,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(credits), insertBatch(db, credits)
}

func loadPayments(db *gorm.DB, path string) (int, error) {
	var payments []payment.Payment
	err := readRows(path, func(row map[string]string) error {
		id, err := parseUint(row["id"])
		if err != nil {
			return err
		}
		creditID, err := parseUint(row["credit_id"])
		if err != nil {
			return err
		}
		typeID, err := parseUint(row["type_id"])
		if err != nil {
			return err
		}
		paid, err := time.Parse(datasetDateLayout, row["payment_date"])
		if err != nil {
			return err
		}
		sum, err := decimal.NewFromString(row["sum"])
		if err != nil {
			return err
		}
		payments = append(payments, payment.Payment{
			ID:          id,
			Sum:         sum,
			PaymentDate: paid,
			CreditID:    creditID,
			TypeID:      typeID,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(payments), insertBatch(db, payments)
}

func loadPlans(db *gorm.DB, path string) (int, error) {
	var plans []plan.Plan
	err := readRows(path, func(row map[string]string) error {
		id, err := parseUint(row["id"])
		if err != nil {
			return err
		}
		categoryID, err := parseUint(row["category_id"])
		if err != nil {
			return err
		}
		period, err := time.Parse(datasetDateLayout, row["period"])
		if err != nil {
			return err
		}
		sum, err := decimal.NewFromString(row["sum"])
		if err != nil {
			return err
		}
		plans = append(plans, plan.Plan{
			ID:         id,
			Period:     period,
			Sum:        sum,
			CategoryID: categoryID,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(plans), insertBatch(db, plans)
}

// readRows streams a tab-separated file with a header row and hands each data
// row to fn as a column name to value map.
func readRows(path string, fn func(map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s line %d: %w", path, line+1, err)
		}
		line++

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, err)
		}
	}
}

// resetSequence moves a table's id sequence past the explicit primary keys
// the loaders insert, so the next runtime insert draws a free id instead of
// colliding with a seeded row.
func resetSequence(db *gorm.DB, table string) error {
	return db.Exec(sequenceResetSQL(table)).Error
}

func sequenceResetSQL(table string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %s",
		table, table,
	)
}

func insertBatch[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 500).Error
	})
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
