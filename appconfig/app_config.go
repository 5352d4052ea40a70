package appconfig

import "github.com/SaiNageswarS/go-api-boot/config"

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	GeminiModel   string `ini:"gemini_model"`
	MongoDatabase string `ini:"mongo_database"`
}
