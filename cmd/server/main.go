package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/oboratav/yk-proxy/internal/adapters/cache"
	"github.com/oboratav/yk-proxy/internal/adapters/carrier"
	"github.com/oboratav/yk-proxy/internal/api"
	"github.com/oboratav/yk-proxy/internal/platform/logging"
	"github.com/oboratav/yk-proxy/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (SOAP carrier clients, SQLite description cache) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	logger, err := logging.New(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	dbPath := getEnv("DB_PATH", "data/yk-proxy.db")
	port := getEnv("PORT", "8080")
	testWSDL := getEnv("YK_TEST_WSDL_URL", carrier.TestWSDLURL)
	prodWSDL := getEnv("YK_PROD_WSDL_URL", carrier.ProdWSDLURL)

	db, err := openDB(dbPath)
	if err != nil {
		logger.Fatal("open description cache db", zap.Error(err))
	}
	defer db.Close()

	if err := cache.InitSchema(db); err != nil {
		logger.Fatal("init description cache schema", zap.Error(err))
	}
	descriptions := cache.NewSqliteDescriptionCache(db)

	// Both carrier deployments are constructed once, with process
	// lifetime; per-request middleware only selects between them.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	testClient, err := carrier.NewSOAPClient(ctx, testWSDL, descriptions, logger)
	if err != nil {
		logger.Fatal("construct test carrier client", zap.Error(err))
	}
	prodClient, err := carrier.NewSOAPClient(ctx, prodWSDL, descriptions, logger)
	if err != nil {
		logger.Fatal("construct production carrier client", zap.Error(err))
	}

	labels := &services.LabelGenerator{
		SenderName:  os.Getenv("YK_SENDER_NAME"),
		SenderPhone: os.Getenv("YK_SENDER_TELEPHONE"),
	}

	router := api.NewRouter(testClient, prodClient, labels, logger)

	logger.Info("server listening", zap.String("addr", ":"+port))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
