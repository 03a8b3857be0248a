// Package config reads narou settings through viper.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NAROU_NAROU_TIMEOUT.
const EnvPrefix = "NAROU"

// Transport names accepted by narou.transport.
const (
	TransportFetch   = "fetch"
	TransportScript  = "script"
	TransportBrowser = "browser"
)

// Config is the resolved configuration.
type Config struct {
	Transport string
	Timeout   time.Duration
	UserAgent string
	RateLimit float64
	BatchSize int
	Endpoints Endpoints
	Datastore Datastore
	Browser   Browser
}

// Endpoints overrides the API base URLs.
type Endpoints struct {
	Novel          string
	Novel18        string
	Ranking        string
	RankingHistory string
	User           string
}

// Datastore controls exporting fetched rows.
type Datastore struct {
	Enabled bool
	DBFile  string
	URL     string
	Token   string
}

// Browser configures the headless browser document.
type Browser struct {
	Headless bool
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("narou.transport", TransportFetch)
	viper.SetDefault("narou.timeout", "15s")
	viper.SetDefault("narou.user_agent", "narou-go/1.0")
	viper.SetDefault("narou.rate_limit", 0)
	viper.SetDefault("narou.batch_size", 300)
	viper.SetDefault("narou.endpoints.novel", "https://api.syosetu.com/novelapi/api/")
	viper.SetDefault("narou.endpoints.novel18", "https://api.syosetu.com/novel18api/api/")
	viper.SetDefault("narou.endpoints.ranking", "https://api.syosetu.com/rank/rankget/")
	viper.SetDefault("narou.endpoints.ranking_history", "https://api.syosetu.com/rank/rankin/")
	viper.SetDefault("narou.endpoints.user", "https://api.syosetu.com/userapi/api/")
	viper.SetDefault("datastore.enabled", false)
	viper.SetDefault("datastore.dbfile", "./narou.db")
	viper.SetDefault("datastore.url", "")
	viper.SetDefault("datastore.token", "")
	viper.SetDefault("browser.headless", true)
}

// Load reads the current viper state into a Config.
func Load() Config {
	return Config{
		Transport: viper.GetString("narou.transport"),
		Timeout:   viper.GetDuration("narou.timeout"),
		UserAgent: viper.GetString("narou.user_agent"),
		RateLimit: viper.GetFloat64("narou.rate_limit"),
		BatchSize: viper.GetInt("narou.batch_size"),
		Endpoints: Endpoints{
			Novel:          viper.GetString("narou.endpoints.novel"),
			Novel18:        viper.GetString("narou.endpoints.novel18"),
			Ranking:        viper.GetString("narou.endpoints.ranking"),
			RankingHistory: viper.GetString("narou.endpoints.ranking_history"),
			User:           viper.GetString("narou.endpoints.user"),
		},
		Datastore: Datastore{
			Enabled: viper.GetBool("datastore.enabled"),
			DBFile:  viper.GetString("datastore.dbfile"),
			URL:     viper.GetString("datastore.url"),
			Token:   viper.GetString("datastore.token"),
		},
		Browser: Browser{
			Headless: viper.GetBool("browser.headless"),
		},
	}
}
