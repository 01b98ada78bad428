// Package dbtest opens throwaway SQLite databases with the directory schema
// for repository and handler tests.
package dbtest

import (
	"io"
	"log/slog"

	"github.com/frahmantamala/company-directory/internal/core/datamodel/company"
	"github.com/frahmantamala/company-directory/internal/core/datamodel/department"
	"github.com/frahmantamala/company-directory/internal/core/datamodel/employee"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns an in-memory database with the companies, departments and
// employees tables. The pool is pinned to one connection so every query sees
// the same memory database.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&company.Company{}, &department.Department{}, &employee.Employee{}); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLX wraps the connection behind db for the sqlx read paths.
func SQLX(db *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, "sqlite3"), nil
}

// Logger discards everything below error level.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
