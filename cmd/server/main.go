package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shortlabs/linkd/internal/config"
	"github.com/shortlabs/linkd/internal/repository"
	"github.com/shortlabs/linkd/internal/repository/postgres"
	"github.com/shortlabs/linkd/internal/repository/sqlite"
	"github.com/shortlabs/linkd/internal/service"
	"github.com/shortlabs/linkd/internal/shortener"
	"github.com/shortlabs/linkd/internal/transport/client"
	httpTransport "github.com/shortlabs/linkd/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "linkd",
	Short: "A link shortening service written in Go",
	Long:  "A link shortening service with SQLite or PostgreSQL storage, random code generation, and per-link click accounting",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the link shortening server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for interacting with the server",
}

var createCmd = &cobra.Command{
	Use:   "create [URL]",
	Short: "Create a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateLink,
}

var getCmd = &cobra.Command{
	Use:   "get [CODE]",
	Short: "Get information about a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetLink,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [CODE]",
	Short: "Delete a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteLink,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all short links",
	RunE:  runListLinks,
}

// envOr returns the value of the environment variable or the fallback.
// A .env file, if present, is loaded before flag defaults are read.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func init() {
	// Flag defaults come from the environment so deployments can configure
	// the server without wrapping the command line.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	// Server command flags
	serverCmd.Flags().StringP("port", "p", envOr("LINKD_PORT", "8080"), "Server port")
	serverCmd.Flags().String("base-url", envOr("LINKD_BASE_URL", "http://localhost:8080"), "Base URL used to build short URLs")
	serverCmd.Flags().String("storage-driver", envOr("LINKD_STORAGE_DRIVER", config.DriverSQLite), "Storage driver (sqlite or postgres)")
	serverCmd.Flags().String("db-path", envOr("LINKD_DB_PATH", "links.db"), "Database file path (sqlite driver)")
	serverCmd.Flags().String("db-dsn", envOr("LINKD_DB_DSN", ""), "Database DSN (postgres driver)")

	// Shortener configuration flags
	serverCmd.Flags().Int("code-length", envOrInt("LINKD_CODE_LENGTH", shortener.DefaultCodeLength), "Length of generated codes")

	// Logging configuration flags
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging (HTTP requests/responses and error details)")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", envOr("LINKD_SERVER_URL", "http://localhost:8080"), "Server URL")
	createCmd.Flags().StringP("code", "c", "", "Custom code for the short link (6-8 alphanumeric characters)")

	// Add subcommands
	clientCmd.AddCommand(createCmd, getCmd, deleteCmd, listCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

// openRepository builds the LinkRepository for the configured driver.
func openRepository(cfg *config.Config) (repository.LinkRepository, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Storage.Path)
	case config.DriverPostgres:
		return postgres.New(cfg.Storage.DSN)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	// Get configuration from CLI flags
	port, _ := cmd.Flags().GetString("port")
	baseURL, _ := cmd.Flags().GetString("base-url")
	driver, _ := cmd.Flags().GetString("storage-driver")
	dbPath, _ := cmd.Flags().GetString("db-path")
	dsn, _ := cmd.Flags().GetString("db-dsn")
	codeLength, _ := cmd.Flags().GetInt("code-length")
	verbose, _ := cmd.Flags().GetBool("verbose")

	shortenerConfig := shortener.Config{
		CodeLength: codeLength,
	}

	// Create configuration
	cfg, err := config.New(port, baseURL, driver, dbPath, dsn, verbose, shortenerConfig)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	log.Printf("Starting link shortener server with config: port=%s driver=%s", cfg.Server.Port, cfg.Storage.Driver)

	// Initialize storage
	repo, err := openRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize code generator
	generator, err := shortener.NewGenerator(cfg.Shortener)
	if err != nil {
		repo.Close()
		return fmt.Errorf("failed to create code generator: %w", err)
	}

	links := service.NewLinkService(repo, generator, cfg.Server.BaseURL)
	defer func() {
		if err := links.Close(); err != nil {
			log.Printf("Error closing link service: %v", err)
		}
	}()

	// Create and start HTTP server
	server := httpTransport.NewServer(links, cfg.Server.Port, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

func newCommands(cmd *cobra.Command) *client.Commands {
	serverURL, _ := cmd.Flags().GetString("server-url")
	return client.NewCommands(client.NewClient(serverURL))
}

func runCreateLink(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetString("code")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Create(ctx, args[0], code)
}

func runGetLink(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Get(ctx, args[0])
}

func runDeleteLink(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).Delete(ctx, args[0])
}

func runListLinks(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newCommands(cmd).List(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
