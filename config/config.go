package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruitment" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret string `default:"" env:"AUTH_JWT_SECRET"`
		TokenTTL  int    `default:"24" env:"AUTH_TOKEN_TTL_HOURS"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@recruitment.local" env:"SMTP_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"recruitment" env:"S3_BUCKET_NAME"`
	}
	// Preload seeds the org and the fixed approver accounts. Approver
	// authorization is role-attribute based; these settings only bootstrap
	// the accounts, they are not an identity lookup table.
	Preload struct {
		SpaceName          string `default:"Recruitment" env:"PRELOAD_SPACE_NAME"`
		HREmail            string `default:"" env:"PRELOAD_HR_EMAIL"`
		HRPassword         string `default:"" env:"PRELOAD_HR_PASSWORD"`
		ManagementEmail    string `default:"" env:"PRELOAD_MANAGEMENT_EMAIL"`
		ManagementPassword string `default:"" env:"PRELOAD_MANAGEMENT_PASSWORD"`
		FMEmail            string `default:"" env:"PRELOAD_FM_EMAIL"`
		FMPassword         string `default:"" env:"PRELOAD_FM_PASSWORD"`
		CEOEmail           string `default:"" env:"PRELOAD_CEO_EMAIL"`
		CEOPassword        string `default:"" env:"PRELOAD_CEO_PASSWORD"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
