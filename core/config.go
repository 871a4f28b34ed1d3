package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Host string
		Port string
	}

	NotifierConfig struct {
		Email          string // destination for the email notifier; empty = console only
		SendgridApiKey string
	}

	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		// VaultRoot is the hierarchical store's top-level directory.
		// TemplatesDir is a vault-relative folder whose files are offered as
		// note templates. DataDir holds the persisted registry documents.
		VaultRoot    string
		DataDir      string
		TemplatesDir string

		RollbarToken string

		Server   ServerConfig
		Notifier NotifierConfig
	}
)

func (c ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// NewConfig assembles the Config from defaults, an optional .env file and the
// environment.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Jadwali")
	conf.SetDefault("build", "dev")
	conf.SetDefault("vaultRoot", filepath.Join(Getwd(), "vault"))
	conf.SetDefault("dataDir", filepath.Join(Getwd(), "data"))
	conf.SetDefault("templatesDir", "Templates")
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", "8000")
	conf.SetDefault("notifyEmail", "")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		VaultRoot:    conf.GetString("vaultRoot"),
		DataDir:      conf.GetString("dataDir"),
		TemplatesDir: conf.GetString("templatesDir"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host: conf.GetString("serverHost"),
			Port: conf.GetString("serverPort"),
		},
		Notifier: NotifierConfig{
			Email:          conf.GetString("notifyEmail"),
			SendgridApiKey: conf.GetString("sendgridApiKey"),
		},
	}
}
