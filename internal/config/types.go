package config

// OutboxType selects where accepted contact submissions go.
type OutboxType string

const (
	OutboxLog    OutboxType = "log"
	OutboxSQLite OutboxType = "sqlite"
)

// Config is the top-level site configuration, corresponding to .hanssen.yml.
type Config struct {
	Site      SiteConfig      `yaml:"site" koanf:"site"`
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Session   SessionConfig   `yaml:"session" koanf:"session"`
	Theme     ThemeConfig     `yaml:"theme" koanf:"theme"`
	Content   ContentConfig   `yaml:"content" koanf:"content"`
	Contact   ContactConfig   `yaml:"contact" koanf:"contact"`
	Telemetry TelemetryConfig `yaml:"telemetry" koanf:"telemetry"`
	Log       LogConfig       `yaml:"log" koanf:"log"`
}

// SiteConfig holds the page metadata.
type SiteConfig struct {
	Name        string `yaml:"name" koanf:"name"`
	Title       string `yaml:"title" koanf:"title"`
	Description string `yaml:"description" koanf:"description"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port              int    `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ReadHeaderTimeout string `yaml:"read_header_timeout" koanf:"read_header_timeout"`
	RequestTimeout    string `yaml:"request_timeout" koanf:"request_timeout"`
}

// SessionConfig controls in-memory visitor sessions.
type SessionConfig struct {
	IdleTimeout   string `yaml:"idle_timeout" koanf:"idle_timeout"`
	SweepInterval string `yaml:"sweep_interval" koanf:"sweep_interval"`
}

// ThemeConfig sets the preference new visitors start with.
type ThemeConfig struct {
	Default string `yaml:"default" koanf:"default"`
}

// ContentConfig points at an optional on-disk content tree whose posts/
// directory overlays the built-in posts.
type ContentConfig struct {
	Dir string `yaml:"dir" koanf:"dir"`
}

// ContactConfig controls contact form delivery.
type ContactConfig struct {
	Outbox OutboxType `yaml:"outbox" koanf:"outbox"`
	DBPath string     `yaml:"db_path" koanf:"db_path"`
}

// TelemetryConfig enables OTLP trace export when an endpoint is set.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" koanf:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name" koanf:"service_name"`
	Insecure     bool   `yaml:"insecure" koanf:"insecure"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
