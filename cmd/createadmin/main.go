package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lucasroqe/PDM-App-School/config"
	"github.com/lucasroqe/PDM-App-School/internal/dto"
	"github.com/lucasroqe/PDM-App-School/internal/repository"
	"github.com/lucasroqe/PDM-App-School/internal/service"
	"github.com/lucasroqe/PDM-App-School/pkg/database"
	applogger "github.com/lucasroqe/PDM-App-School/pkg/logger"
)

// createadmin provisions an administrator account. Admins cannot sign up
// through the API.
func main() {
	email := flag.String("email", "", "admin email")
	name := flag.String("nome", "", "admin display name")
	password := flag.String("senha", os.Getenv("SCHOLAR_ADMIN_PASSWORD"), "admin password (default $SCHOLAR_ADMIN_PASSWORD)")
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reg := service.NewRegistrationService(repository.NewRepository(db), cfg.Auth.BcryptCost, logger)
	userID, err := reg.RegisterAdmin(ctx, &dto.RegisterAdminRequest{
		Email:    *email,
		Password: *password,
		Name:     *name,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *email, err)
			os.Exit(1)
		}
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	fmt.Printf("admin created: id=%d email=%s\n", userID, *email)
}
