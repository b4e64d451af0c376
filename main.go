package main

import (
	"fmt"
	"os"
	"strings"

	"bramble/app/config"
	"bramble/app/logging"
	"bramble/app/repositories"
	"bramble/app/routes"
	"bramble/app/seed"

	"go.uber.org/zap"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("bramble version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		runSeed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: bramble <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog server.
  seed       Create the initial admin account and first post.

Configuration is read from BLOG_* environment variables (or a .env file);
see app/config.
`
	fmt.Println(helpText)
}

// serve runs the blog HTTP server.
func serve() {
	cfg, logger := mustSetup()
	defer logger.Sync()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	router, err := routes.Setup(db, logger)
	if err != nil {
		logger.Fatal("failed to set up routes", zap.Error(err))
	}

	logger.Info("starting blog server", zap.String("addr", cfg.ServerAddr()))
	if err := routes.StartServer(cfg.ServerAddr(), router); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// runSeed seeds the initial admin account and first post.
func runSeed() {
	cfg, logger := mustSetup()
	defer logger.Sync()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	users := repositories.NewBadgerUserRepository(db)
	posts := repositories.NewBadgerPostRepository(db)

	if err := seed.Run(cfg, users, posts, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}

func mustSetup() (*config.Config, *zap.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}
