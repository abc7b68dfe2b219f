package config

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var once sync.Once

// DefaultAssetIDs is the tracked asset set when ASSET_IDS is not configured.
const DefaultAssetIDs = "bitcoin,ethereum,binancecoin,cardano,solana,ripple,polkadot,dogecoin,avalanche-2,matic-network"

func InitConfig() {
	once.Do(func() {
		_ = godotenv.Load()

		viper.AutomaticEnv()

		viper.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
		viper.BindEnv("alert_chat_id", "ALERT_CHAT_ID")
		viper.BindEnv("operator_chat_id", "OPERATOR_CHAT_ID")
		viper.BindEnv("asset_ids", "ASSET_IDS")
		viper.BindEnv("check_interval_seconds", "CHECK_INTERVAL_SECONDS")
		viper.BindEnv("metrics_port", "METRICS_PORT")
		viper.BindEnv("db_path", "DB_PATH")
		viper.BindEnv("debug", "DEBUG")
		viper.BindEnv("lang", "LANG")

		viper.SetDefault("asset_ids", DefaultAssetIDs)
		viper.SetDefault("check_interval_seconds", 300)
		viper.SetDefault("metrics_port", 9090)
		viper.SetDefault("db_path", "data/bot.db")
		viper.SetDefault("debug", false)
		viper.SetDefault("lang", "en")
	})
}

func GetString(key string) string {
	InitConfig()
	return viper.GetString(key)
}

func GetInt(key string) int {
	InitConfig()
	return viper.GetInt(key)
}

func GetInt64(key string) int64 {
	InitConfig()
	return viper.GetInt64(key)
}

func GetBool(key string) bool {
	InitConfig()
	return viper.GetBool(key)
}

// GetAssetIDs returns the configured asset id list, trimmed and with empty
// entries removed.
func GetAssetIDs() []string {
	InitConfig()

	var ids []string
	for _, id := range strings.Split(viper.GetString("asset_ids"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
