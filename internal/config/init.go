package config

import (
	"context"
	"fmt"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	db, err := InitDB()
	if err != nil {
		return nil, err
	}

	fileStore, err := InitStorage()
	if err != nil {
		return nil, err
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,

		Storage: fileStore,

		JWTSecret: []byte(jwtSecret),
		TokenTTL:  time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		Port:      viper.GetString("PORT"),
	}

	return ctx, nil
}

func InitDB() (*gorm.DB, error) {
	dsn := viper.GetString("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&entity.City{},
		&entity.Category{},
		&entity.Unit{},
		&entity.Attribute{},
		&entity.User{},
		&entity.Project{},
		&entity.ProjectAttribute{},
		&entity.ProjectImage{},
		&entity.Order{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func InitLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if viper.GetString("ENVIRONMENT") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func InitStorage() (storage.FileStore, error) {
	bucket := viper.GetString("GCS_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET_NAME environment variable is not set")
	}

	client, err := gcs.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
	}
	return storage.NewGCSStore(client, bucket), nil
}
