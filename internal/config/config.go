package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

var Cfg Config

type Config struct {
	// Server
	ServerPort  string `env:"SERVER_PORT" envDefault:"7070"`
	Environment string `env:"GO_ENV" envDefault:"development"` // development, production

	// ERP backend (supplier, address and bank records live there)
	ERPBaseURL   string `env:"ERP_BASE_URL"`
	ERPAPIKey    string `env:"ERP_API_KEY"`
	ERPAPISecret string `env:"ERP_API_SECRET"`

	// Identity verification API (PAN / GSTIN / bank / MSME lookups)
	KYCBaseURL string `env:"KYC_BASE_URL"`
	KYCToken   string `env:"KYC_BEARER_TOKEN"`

	// Where to send suppliers whose account already exists
	LoginPageURL string `env:"LOGIN_PAGE_URL" envDefault:"/login"`

	// AWS
	S3Region        string `env:"AWS_S3_REGION" envDefault:"us-east-2"`
	S3Bucket        string `env:"S3_BUCKET_NAME"`
	CognitoRegion   string `env:"AWS_COGNITO_REGION" envDefault:"us-east-2"`
	CognitoClientID string `env:"COGNITO_APP_CLIENT_ID"`
	CognitoPoolID   string `env:"COGNITO_USER_POOL_ID"`

	// Verification debounce window in milliseconds
	VerifyDebounceMillis int `env:"VERIFY_DEBOUNCE_MILLIS" envDefault:"600"`

	// Sessions untouched longer than this many hours are swept
	SessionMaxIdleHours int `env:"SESSION_MAX_IDLE_HOURS" envDefault:"720"`

	// Snowflake node for verification request tokens
	SnowflakeNodeID int64 `env:"SNOWFLAKE_NODE_ID" envDefault:"1"`
}

// Load fills Cfg from the environment. A missing .env file is not an
// error: in production the variables come from SSM (see cmd/api).
func Load() error {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return env.Parse(&Cfg)
}
