package config

import "os"

// Server configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Uploads configuration
type UploadsConfig struct {
	Dir       string
	URLPrefix string
}

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Uploads UploadsConfig
	BaseURL string
}

// Default configuration values
const (
	DefaultServerPort       = "8080"
	DefaultServerHost       = ""
	DefaultServerEnv        = "development"
	DefaultMongoURI         = "mongodb://localhost:27017/teamroster"
	DefaultMongoDB          = "teamroster"
	DefaultUploadsDir       = "./public/uploads"
	DefaultUploadsURLPrefix = "/uploads"
	DefaultBaseURL          = "http://localhost:8080"
	DefaultRecordCollection = "records"
)

// New returns a new Config with values from the environment,
// falling back to defaults
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
			Env:  getEnv("APP_ENV", DefaultServerEnv),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Uploads: UploadsConfig{
			Dir:       getEnv("UPLOADS_DIR", DefaultUploadsDir),
			URLPrefix: getEnv("UPLOADS_URL_PREFIX", DefaultUploadsURLPrefix),
		},
		BaseURL: getEnv("BASE_URL", DefaultBaseURL),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
