package internal

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

var c *config

const (
	RunAddress     = "RUN_ADDRESS"
	StorageBackend = "STORAGE_BACKEND"
	DataDir        = "DATA_DIR"
	DatabaseURI    = "DATABASE_URI"
	RedisAddr      = "REDIS_ADDR"
	AdminPassword  = "ADMIN_PASSWORD"
	AllowedOrigins = "ALLOWED_ORIGINS"
)

const (
	defaultRunAddress     = "localhost:8080"
	defaultStorageBackend = "file"
	defaultDataDir        = "./data"
	defaultRedisAddr      = "localhost:6379"
	defaultAdminPassword  = "12122424"
	defaultAllowedOrigins = "http://localhost:5173,http://localhost:3001"
)

type config struct {
	RunAddress     string
	StorageBackend string
	DataDir        string
	DatabaseURI    string
	RedisAddr      string
	AdminPassword  string
	AllowedOrigins string
}

func NewConfig() *config {
	// .env is optional, env vars win either way
	_ = godotenv.Load()

	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.StorageBackend, "s", setEnvOrDefault(StorageBackend, defaultStorageBackend), "blob storage backend: file, postgres, redis or memory")
	flag.StringVar(&c.DataDir, "f", setEnvOrDefault(DataDir, defaultDataDir), "data directory for the file backend")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, ""), "postgres connection path for the postgres backend")
	flag.StringVar(&c.RedisAddr, "r", setEnvOrDefault(RedisAddr, defaultRedisAddr), "redis address for the redis backend")
	flag.StringVar(&c.AdminPassword, "p", setEnvOrDefault(AdminPassword, defaultAdminPassword), "shared admin password")
	flag.StringVar(&c.AllowedOrigins, "o", setEnvOrDefault(AllowedOrigins, defaultAllowedOrigins), "comma separated CORS origins")

	flag.Parse()
	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
