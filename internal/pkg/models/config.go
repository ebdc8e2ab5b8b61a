package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Kaviar   KaviarConfig
	Session  SessionConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	CORS     CORSConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// KaviarConfig points at the remote Kaviar REST API
type KaviarConfig struct {
	BaseURL string
	Prefix  string
	Timeout int // in seconds, 0 keeps the transport default
}

// APIBase returns the base address every request is built against
func (k KaviarConfig) APIBase() string {
	return k.BaseURL + k.Prefix
}

// SessionConfig controls the admin session cookie and token store
type SessionConfig struct {
	Store        string // "redis" or "memory"
	CookieName   string
	TTL          int // in hours, 0 disables expiry of stored tokens
	SecureCookie bool

	LoginRateLimit  int // attempts per window, 0 disables throttling
	LoginRateWindow int // in seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig points at the nsqd used for audit events when NATS is not configured
type NSQConfig struct {
	Address string
}

// CORSConfig lists origins allowed to read the JSON endpoints
type CORSConfig struct {
	AllowedOrigins []string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
