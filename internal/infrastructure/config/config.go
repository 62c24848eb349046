package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"

	BlobS3     = "s3"
	BlobMinio  = "minio"
	BlobMemory = "memory"
)

// Config is the service configuration. Every key is read from the
// environment (a .env file is loaded first by cmd/api).
type Config struct {
	Port     int
	LogLevel string

	StorageDriver  string
	SQLitePath     string
	AWSRegion      string
	DynamoEndpoint string
	AgreementsTbl  string
	ReferencesTbl  string
	DraftsTbl      string

	BlobDriver    string
	BlobBucket    string
	BlobEndpoint  string
	BlobAccessKey string
	BlobSecretKey string
	BlobUseSSL    bool
	BlobURLExpiry time.Duration

	CatalogPath   string
	AdminAPIToken string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	CompanyInbox string

	PublicBaseURL string
	DraftURLPath  string
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("SQLITE_PATH", "agreements.db")
	v.SetDefault("AWS_REGION", "eu-west-2")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("AGREEMENTS_TABLE", "agreements")
	v.SetDefault("AGREEMENT_REFERENCES_TABLE", "agreement_references")
	v.SetDefault("DRAFTS_TABLE", "agreement_drafts")
	v.SetDefault("BLOB_DRIVER", BlobMemory)
	v.SetDefault("BLOB_BUCKET", "cfp-agreements")
	v.SetDefault("BLOB_ENDPOINT", "")
	v.SetDefault("BLOB_ACCESS_KEY", "")
	v.SetDefault("BLOB_SECRET_KEY", "")
	v.SetDefault("BLOB_USE_SSL", true)
	v.SetDefault("BLOB_URL_EXPIRY", "168h")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("ADMIN_API_TOKEN", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "Core Fire Protection <noreply@corefireprotection.co.uk>")
	v.SetDefault("COMPANY_INBOX", "")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("DRAFT_URL_PATH", "/agreement")

	cfg := Config{
		Port:           v.GetInt("PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		StorageDriver:  strings.ToLower(v.GetString("STORAGE_DRIVER")),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		AWSRegion:      v.GetString("AWS_REGION"),
		DynamoEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		AgreementsTbl:  v.GetString("AGREEMENTS_TABLE"),
		ReferencesTbl:  v.GetString("AGREEMENT_REFERENCES_TABLE"),
		DraftsTbl:      v.GetString("DRAFTS_TABLE"),
		BlobDriver:     strings.ToLower(v.GetString("BLOB_DRIVER")),
		BlobBucket:     v.GetString("BLOB_BUCKET"),
		BlobEndpoint:   v.GetString("BLOB_ENDPOINT"),
		BlobAccessKey:  v.GetString("BLOB_ACCESS_KEY"),
		BlobSecretKey:  v.GetString("BLOB_SECRET_KEY"),
		BlobUseSSL:     v.GetBool("BLOB_USE_SSL"),
		BlobURLExpiry:  v.GetDuration("BLOB_URL_EXPIRY"),
		CatalogPath:    v.GetString("CATALOG_PATH"),
		AdminAPIToken:  v.GetString("ADMIN_API_TOKEN"),
		SMTPHost:       v.GetString("SMTP_HOST"),
		SMTPPort:       v.GetInt("SMTP_PORT"),
		SMTPUsername:   v.GetString("SMTP_USERNAME"),
		SMTPPassword:   v.GetString("SMTP_PASSWORD"),
		MailFrom:       v.GetString("MAIL_FROM"),
		CompanyInbox:   v.GetString("COMPANY_INBOX"),
		PublicBaseURL:  strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		DraftURLPath:   v.GetString("DRAFT_URL_PATH"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB, StorageSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.BlobDriver {
	case BlobS3, BlobMinio, BlobMemory:
	default:
		return fmt.Errorf("unsupported BLOB_DRIVER %q", c.BlobDriver)
	}
	if c.BlobDriver == BlobMinio && c.BlobEndpoint == "" {
		return fmt.Errorf("BLOB_ENDPOINT is required for the minio driver")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// DraftURL is the client-facing link that resumes a draft.
func (c Config) DraftURL(token string) string {
	return c.PublicBaseURL + "/" + strings.Trim(c.DraftURLPath, "/") + "?draft=" + token
}
