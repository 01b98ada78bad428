package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/company-directory/internal"
	"github.com/frahmantamala/company-directory/internal/company"
	companyPostgres "github.com/frahmantamala/company-directory/internal/company/postgres"
	"github.com/frahmantamala/company-directory/internal/core/events"
	"github.com/frahmantamala/company-directory/internal/department"
	departmentPostgres "github.com/frahmantamala/company-directory/internal/department/postgres"
	"github.com/frahmantamala/company-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/company-directory/internal/employee/postgres"
	"github.com/frahmantamala/company-directory/internal/report"
	reportPostgres "github.com/frahmantamala/company-directory/internal/report/postgres"
	"github.com/frahmantamala/company-directory/internal/transport"
	"github.com/frahmantamala/company-directory/internal/transport/rest"
	"github.com/frahmantamala/company-directory/internal/transport/swagger"
	"github.com/frahmantamala/company-directory/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	SQLX   *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "base_url", deps.Config.Server.BaseURL)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.SQLX.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	openAPIPath := deps.Config.Server.OpenAPIPath
	if openAPIPath == "" {
		openAPIPath = "./api/openapi.yml"
	}
	doc, err := swagger.LoadSpec(context.Background(), openAPIPath)
	if err != nil {
		return err
	}
	deps.Logger.Info("loaded openapi spec", "title", doc.Info.Title, "version", doc.Info.Version, "paths", doc.Paths.Len())

	base := transport.NewBaseHandler(deps.Logger).
		WithPageSizes(deps.Config.Pagination.DefaultSize, deps.Config.Pagination.MaxSize)

	companyService := company.NewService(companyPostgres.NewCompanyRepository(deps.DB), deps.Logger)
	departmentService := department.NewService(departmentPostgres.NewDepartmentRepository(deps.DB), deps.Logger)
	eventBus := events.NewEventBus(deps.Logger)
	for _, eventType := range events.EmployeeEventTypes {
		eventBus.Subscribe(eventType, auditEmployeeChange(deps.Logger))
	}

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(deps.DB), deps.Logger).
		WithPublisher(eventBus)
	reportService := report.NewService(reportPostgres.NewReportRepository(deps.DB, deps.SQLX), deps.Logger)

	rest.RegisterAllRoutes(deps.Router, deps.SQLX.DB, base, rest.Handlers{
		Company:    company.NewHandler(base, companyService),
		Department: department.NewHandler(base, departmentService),
		Employee:   employee.NewHandler(base, employeeService),
		Report:     report.NewHandler(base, reportService),
	}, rest.Options{
		OpenAPIPath:    openAPIPath,
		AllowedOrigins: deps.Config.Server.AllowedOrigins,
		QueryTimeout:   deps.Config.Database.QueryTimeout,
	})
	return nil
}

// auditEmployeeChange writes one audit line per employee write.
func auditEmployeeChange(lg *slog.Logger) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		lg.With(logger.Attrs(ctx)...).Info("audit",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)

	sqlxDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(sqlxDB)
	if err != nil {
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     gormDB,
		SQLX:   sqlxDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx-backed pool shared by sqlx and gorm.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps an open pool in a gorm session.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
}
