// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package constants provides centralized, immutable values for the CMS backend.

It defines default timeouts, rate limits, and cross-cutting keys shared
between the different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and header names.
  - Uploads: File-count and size ceilings for multipart requests.

Using this package keeps magic strings and magic numbers out of the
business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "edu-mcru-api"
	AppVersion = "1.0.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous because article writes carry multipart image payloads.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 60 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "edu.mcru.ac.th"

	// AccessTokenTTL is the validity window of an issued access token.
	AccessTokenTTL = 1 * time.Hour
)

// # Uploads

const (
	// MaxUploadBytes caps the total size of a multipart request body.
	MaxUploadBytes = 64 << 20 // 64 MiB

	// MaxUploadMemory is the in-memory threshold before multipart parts
	// spill to temporary files.
	MaxUploadMemory = 16 << 20 // 16 MiB

	// MaxGalleryFiles is the maximum number of gallery images per article write.
	MaxGalleryFiles = 20

	// UploadPublicPrefix is the URL prefix under which stored files are served.
	UploadPublicPrefix = "/uploads"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisKeySettings holds the cached site-settings snapshot.
	RedisKeySettings = "cms:settings:snapshot"
)
