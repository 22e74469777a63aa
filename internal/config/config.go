package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Game    GameConfig    `mapstructure:"game"    validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Seconds to wait for in-flight requests on shutdown
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// GameConfig contains the gameplay tuning settings.
type GameConfig struct {
	Lives                  int     `mapstructure:"lives"                    validate:"required,gt=0"`
	DeckGap                int     `mapstructure:"deck_gap"                 validate:"required,gte=1"`
	FamilyProbability      float64 `mapstructure:"family_probability"       validate:"gte=0,lte=1"`
	AvoidPeopleProbability float64 `mapstructure:"avoid_people_probability" validate:"gte=0,lte=1"`
	// Seed makes card selection reproducible; 0 means unseeded
	Seed uint64 `mapstructure:"seed"`
}

// CatalogConfig contains the item catalog settings.
type CatalogConfig struct {
	Path        string   `mapstructure:"path"         validate:"required"`
	ExcludedIDs []string `mapstructure:"excluded_ids"`
	ImageWidth  int      `mapstructure:"image_width"  validate:"gt=0"`
	// ImagesDir holds locally served images; empty disables /images
	ImagesDir string `mapstructure:"images_dir"`
}

// CORSConfig contains cross-origin settings for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
