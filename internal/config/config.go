package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	// BaseURL is prepended to storage keys to build public image URLs.
	BaseURL string
}

type OAuth struct {
	KakaoAPIURL string
	NaverAPIURL string
	Timeout     time.Duration
}

type Log struct {
	Level       string
	Development bool
}

type Config struct {
	ServerPort       int
	DB               DB
	MinIO            MinIO
	OAuth            OAuth
	Log              Log
	JWTSecretKey     string
	JWTAlgorithm     string
	TokenTTL         time.Duration
	AuthHeader       string
	MaxUploadSize    int64
	DefaultThumbnail string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "galleryhub"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		BaseURL:    getEnv("MEDIA_BASE_URL", "http://localhost:9000/images/"),
	}
}

func LoadOAuth() OAuth {
	return OAuth{
		KakaoAPIURL: getEnv("KAKAO_API_URL", "https://kapi.kakao.com"),
		NaverAPIURL: getEnv("NAVER_API_URL", "https://openapi.naver.com"),
		Timeout:     parseDuration(getEnv("PROVIDER_TIMEOUT", "3s"), 3*time.Second),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		DB:         LoadDB(),
		MinIO:      LoadMinIO(),
		OAuth:      LoadOAuth(),
		Log: Log{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvBool("LOG_DEVELOPMENT", false),
		},
		JWTSecretKey:     getEnv("JWT_SECRET_KEY", ""),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:         parseDuration(getEnv("TOKEN_TTL", "0s"), 0),
		AuthHeader:       getEnv("AUTH_HEADER", "Authorization"),
		MaxUploadSize:    parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		DefaultThumbnail: getEnv("DEFAULT_THUMBNAIL", "https://galleryhub.s3.ap-northeast-2.amazonaws.com/default-thumbnail.png"),
	}
}
