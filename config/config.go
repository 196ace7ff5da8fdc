package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Store    Store
	S3       S3
	Remote   Remote
	Render   Render
	Catalog  Catalog
	Gemini   Gemini
}

type Server struct {
	Port    string
	GinMode string
}

type Log struct {
	Level string
}

type Database struct {
	Driver     string // sqlite or postgres
	Host       string
	Port       string
	User       string
	Password   string `json:"-"`
	Name       string
	SQLitePath string
}

type Store struct {
	Backend string // file, database, s3 or memory
	SlotKey string
	FileDir string
}

type S3 struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string `json:"-"`
}

type Remote struct {
	SyncEnabled bool
	BaseURL     string
	Timeout     time.Duration
}

type Render struct {
	CacheSize int
}

type Catalog struct {
	SeedFile string
}

type Gemini struct {
	APIKey string `json:"-"`
	Model  string
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SQLITE_PATH", "./data/quizdraft.db")
	viper.SetDefault("STORE_BACKEND", "file")
	viper.SetDefault("STORE_SLOT_KEY", "questions")
	viper.SetDefault("STORE_FILE_DIR", "./data")
	viper.SetDefault("S3_REGION", "auto")
	viper.SetDefault("REMOTE_SYNC_ENABLED", false)
	viper.SetDefault("REMOTE_BASE_URL", "http://localhost:8080/api/v1/bank")
	viper.SetDefault("REMOTE_TIMEOUT", "10s")
	viper.SetDefault("RENDER_CACHE_SIZE", 512)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Log.Level = viper.GetString("LOG_LEVEL")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("DATABASE_SQLITE_PATH")

	config.Store.Backend = viper.GetString("STORE_BACKEND")
	config.Store.SlotKey = viper.GetString("STORE_SLOT_KEY")
	config.Store.FileDir = viper.GetString("STORE_FILE_DIR")

	config.S3.Bucket = viper.GetString("S3_BUCKET")
	config.S3.Region = viper.GetString("S3_REGION")
	config.S3.Endpoint = viper.GetString("S3_ENDPOINT")
	config.S3.AccessKeyID = viper.GetString("S3_ACCESS_KEY_ID")
	config.S3.SecretAccessKey = viper.GetString("S3_SECRET_ACCESS_KEY")

	config.Remote.SyncEnabled = viper.GetBool("REMOTE_SYNC_ENABLED")
	config.Remote.BaseURL = viper.GetString("REMOTE_BASE_URL")
	config.Remote.Timeout = viper.GetDuration("REMOTE_TIMEOUT")

	config.Render.CacheSize = viper.GetInt("RENDER_CACHE_SIZE")
	config.Catalog.SeedFile = viper.GetString("CATALOG_SEED_FILE")

	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
