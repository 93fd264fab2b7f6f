package utils

import "time"

// Application Constants
const (
	AppName    = "RenegadeRace"
	AppVersion = "1.0.0"

	// Default values
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour

	// Catalog Constants
	FeaturedVehicleLimit = 3
	MaxVehicleImages     = 20
	MaxDailyRate         = 100000.0

	// Rate Limiting
	DefaultRateLimit = 100

	// Messaging
	MaxMessageLength = 1000
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInvalidToken       = "invalid token"
	ErrTokenExpired       = "token expired"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrNotFound           = "not found"
	ErrConflict           = "conflict"
	ErrValidationFailed   = "validation failed"
	ErrUserNotFound       = "user not found"
	ErrVehicleNotFound    = "vehicle not found"
	ErrTrackNotFound      = "track not found"
)

// Cache Keys
const (
	CacheUserPrefix      = "user:"
	CacheVehiclePrefix   = "vehicle:"
	CacheTrackPrefix     = "track:"
	CacheRateLimitPrefix = "rate_limit:"
)
