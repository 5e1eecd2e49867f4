package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-server/internal/config"
	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// Storage binds the table gateways to the database for the read path.
// Mutations go through Write, which binds the same gateways to a
// transaction.
type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)

	return &Storage{
		DB:           db,
		bdb:          bdb,
		Users:        sqlconfig.NewUsersTable(bdb),
		Transactions: sqlconfig.NewTransactionsTable(bdb),
		Categories:   sqlconfig.NewCategoriesTable(bdb),
	}
}

// Write opens a transaction and returns a Writer whose tables execute
// against it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
