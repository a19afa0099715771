package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "hotels"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort      = "3000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCORSAllowedOrigins = "*"
	DefaultStaticDir          = ""
	DefaultMetricsEnabled     = true

	DefaultKafkaBrokers          = ""
	DefaultKafkaHotelEventsTopic = "hotel-events"
)
