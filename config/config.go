package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Settings struct {
	Env      string
	LogLevel string
	Port     string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	S3Region      string
	S3Bucket      string
	CloudfrontURL string
}

// Load reads .env (when present) and the environment.
func Load() (*Settings, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")

	s := &Settings{
		Env:           v.GetString("APP_ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		Port:          v.GetString("PORT"),
		DBHost:        v.GetString("DB_HOST"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBPort:        v.GetString("DB_PORT"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		S3Region:      v.GetString("S3_REGION"),
		S3Bucket:      v.GetString("S3_BUCKET"),
		CloudfrontURL: v.GetString("CLOUDFRONT_URL"),
	}
	if s.S3Region == "" {
		s.S3Region = v.GetString("AWS_REGION") // fallback
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Env != "development" && s.Env != "staging" && s.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if s.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if s.DBName == "" || s.DBUser == "" {
		return errors.New("DB_NAME and DB_USER are required")
	}
	return nil
}

// ImagesEnabled reports whether meal images can be uploaded.
func (s *Settings) ImagesEnabled() bool {
	return s.S3Bucket != "" && s.S3Region != ""
}

func (s *Settings) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort)
}

func InitDB(s *Settings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(s.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.MealRecord{},
		&models.DietPlan{},
		&models.Alert{},
		&models.UserSetting{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return db, nil
}
