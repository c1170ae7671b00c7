// Command seed bootstraps the database: it can create an initial admin
// account and load the profile/tariff-plan reference catalog. Both operations
// are idempotent.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/service"
	"github.com/orangeplan/user-management/internal/infrastructure/config"
	mongodb "github.com/orangeplan/user-management/internal/infrastructure/db/mongo"
	"github.com/orangeplan/user-management/pkg/logger"
)

func main() {
	adminUsername := flag.String("admin-username", "", "username for the initial admin account")
	adminEmail := flag.String("admin-email", "", "email for the initial admin account")
	adminPassword := flag.String("admin-password", "", "password for the initial admin account")
	reference := flag.Bool("reference", false, "load the profile/tariff-plan reference catalog")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongodb.Disconnect(client)
	}()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	if *adminUsername != "" {
		if *adminEmail == "" || *adminPassword == "" {
			log.Fatal().Msg("-admin-email and -admin-password are required with -admin-username")
		}
		if err := createAdmin(ctx, users, *adminUsername, *adminEmail, *adminPassword); err != nil {
			log.Fatal().Err(err).Msg("admin creation failed")
		}
		log.Info().Str("username", *adminUsername).Msg("admin account ready")
	}

	if *reference {
		if err := mongodb.NewPlanRepository(db).Seed(ctx, referenceCatalog()); err != nil {
			log.Fatal().Err(err).Msg("reference catalog load failed")
		}
		log.Info().Msg("reference catalog loaded")
	}
}

// createAdmin creates an active admin account unless the username is taken.
func createAdmin(ctx context.Context, users *mongodb.MongoUserRepository, username, email, password string) error {
	if _, err := users.FindByUsername(ctx, username); err == nil {
		// already provisioned
		return nil
	} else if err != domain.ErrUserNotFound {
		return err
	}

	if err := domain.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return err
}
