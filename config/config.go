package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize    = "2MB"
	defaultPasswordResetTTL      = time.Hour
	defaultOTPTTL                = 10 * time.Minute
	defaultShippingFee           = "10.00"
	defaultEstimatedDeliveryDays = 5
	defaultIdentifierFloor       = 100
	defaultBucketURL             = "mem://"
	defaultFrontendBaseURL       = "http://localhost:3000"
	defaultQRCodeSize            = 256
	defaultWorkerPort            = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Pricing defaults applied when an order is placed
	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// Identifier configures human-readable sequential identifiers
	Identifier *IdentifierConfig `json:"identifier" yaml:"identifier"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Mail configuration for outbound e-mail
	Mail *MailConfig `json:"mail" yaml:"mail"`

	// Storage configuration for uploaded artwork
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// QRCode configuration for order tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Frontend is used to build links placed in e-mails
	Frontend *FrontendConfig `json:"frontend" yaml:"frontend"`

	// Worker configures the push-subscription worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	OTPTTL            time.Duration `json:"otpTTL" yaml:"otpTTL"`
	PasswordResetTTL  time.Duration `json:"passwordResetTTL" yaml:"passwordResetTTL"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PricingConfig defines order pricing defaults
type PricingConfig struct {
	// Shipping fee charged per order, as a decimal string such as "10.00"
	DefaultShippingFee string `json:"defaultShippingFee" yaml:"defaultShippingFee"`

	// Days added to the placement date for the estimated delivery date
	EstimatedDeliveryDays int `json:"estimatedDeliveryDays" yaml:"estimatedDeliveryDays"`
}

// IdentifierConfig defines the sequential identifier floor
type IdentifierConfig struct {
	Floor int64 `json:"floor" yaml:"floor"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Service account e-mail that must have signed push OIDC tokens
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// MailConfig defines outbound e-mail delivery
type MailConfig struct {
	// Provider type: "log" writes mails to the logger, "smtp" sends them
	Provider string `json:"provider" yaml:"provider"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// StorageConfig defines where uploaded files are kept
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. file:///var/data, gs://bucket, mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// FrontendConfig defines the customer web application
type FrontendConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// WorkerConfig defines the notification worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// New loads config.yaml from the working directory or a nearby config/
// directory, overlays .env and process environment variables, fills
// defaults and rejects configurations the services cannot start with.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks what defaults cannot supply.
func validate(cfg *Config) error {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return errors.New("secretKey.access and secretKey.refresh must differ")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.PasswordResetTTL <= 0 {
		cfg.Auth.PasswordResetTTL = defaultPasswordResetTTL
	}
	if cfg.Auth.OTPTTL <= 0 {
		cfg.Auth.OTPTTL = defaultOTPTTL
	}
	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if strings.TrimSpace(cfg.Pricing.DefaultShippingFee) == "" {
		cfg.Pricing.DefaultShippingFee = defaultShippingFee
	}
	if cfg.Pricing.EstimatedDeliveryDays <= 0 {
		cfg.Pricing.EstimatedDeliveryDays = defaultEstimatedDeliveryDays
	}
	if cfg.Identifier == nil {
		cfg.Identifier = &IdentifierConfig{}
	}
	if cfg.Identifier.Floor <= 0 {
		cfg.Identifier.Floor = defaultIdentifierFloor
	}
	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{Provider: "log"}
	}
	if cfg.Storage == nil || strings.TrimSpace(cfg.Storage.BucketURL) == "" {
		cfg.Storage = &StorageConfig{BucketURL: defaultBucketURL}
	}
	if cfg.Frontend == nil || strings.TrimSpace(cfg.Frontend.BaseURL) == "" {
		cfg.Frontend = &FrontendConfig{BaseURL: defaultFrontendBaseURL}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = cfg.Frontend.BaseURL
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}
