package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"golang.org/x/crypto/bcrypt"

	migrationsdb "journal-in-go/db"
	"journal-in-go/pkg/authenticator"
	"journal-in-go/pkg/config"
	"journal-in-go/pkg/journal"
	"journal-in-go/pkg/render"
	"journal-in-go/pkg/server"
	"journal-in-go/pkg/server/endpoints"
	gormstore "journal-in-go/pkg/server/store/gorm"
	"journal-in-go/pkg/session"
)

// Credentials for the test operator
const (
	testUsername = "admin"
	testPassword = "secret"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB          *gorm.DB
	RawDB       *sql.DB
	Container   testcontainers.Container
	ServerURL   string
	DatabaseURL string
	Server      *server.Server
	listener    net.Listener
}

// NewTestContext starts a PostgreSQL testcontainer, runs the migrations and
// starts the journal server in-process against it.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	// Start PostgreSQL container
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("journal_test"),
		tcpostgres.WithUsername("journal"),
		tcpostgres.WithPassword("journal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://journal:journal@%s:%s/journal_test?sslmode=disable", host, port.Port())

	// Connect with GORM for test setup/assertions
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	// Bring the schema up with the embedded migrations
	if err := runMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	srv, listener, err := startInlineServer(db)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to start inline server: %w", err)
	}
	serverURL := "http://" + listener.Addr().String()

	// Wait for server to be ready
	if err := waitForServer(serverURL, 10*time.Second); err != nil {
		_ = listener.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:          db,
		RawDB:       rawDB,
		Container:   pgContainer,
		ServerURL:   serverURL,
		DatabaseURL: connStr,
		Server:      srv,
		listener:    listener,
	}, nil
}

// startInlineServer starts the journal server in-process on an ephemeral port
func startInlineServer(db *gorm.DB) (*server.Server, net.Listener, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		return nil, nil, err
	}

	cfg := &config.Config{
		AuthUsername:  testUsername,
		AuthPassword:  string(hash),
		SessionSecret: "integration-session-secret",
		AuthSecret:    "integration-auth-secret",
		BindAddress:   "127.0.0.1",
		Port:          0,
	}

	s := server.NewServer(
		cfg,
		db,
		journal.New(gormstore.NewEntriesStore(db), render.New()),
		authenticator.NewGate(cfg.AuthUsername, cfg.AuthPassword),
		session.NewManager(cfg.SessionSecret, cfg.AuthSecret),
	)
	endpoints.RegisterAll(s)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	go func() {
		_ = s.StartWithListener(listener)
	}()

	return s, listener, nil
}

// runMigrations applies the embedded migrations to the test database
func runMigrations(dbURL string) error {
	migrationsFS, err := fs.Sub(migrationsdb.Migrations, "migrations")
	if err != nil {
		return err
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// waitForServer polls the server until it responds or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}

// ResetEntries empties the entries table between scenarios
func (tc *TestContext) ResetEntries() error {
	return tc.DB.Exec(`TRUNCATE entries RESTART IDENTITY`).Error
}

// Close cleans up all test resources
func (tc *TestContext) Close(ctx context.Context) {
	if tc.listener != nil {
		_ = tc.listener.Close()
	}
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
