package testutil

import (
	"testing"

	"github.com/lepinkainen/narou/internal/config"
	"github.com/spf13/viper"
)

// ResetConfig resets viper to the narou defaults and resets it again when the
// test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	config.SetDefaults()

	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset; an unset key cannot be restored.
	})
}

// SetupDatastore points the datastore at a database inside env and enables
// it. Returns the database path.
func SetupDatastore(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("narou.db")
	SetViperValue(t, "datastore.enabled", true)
	SetViperValue(t, "datastore.dbfile", dbPath)

	return dbPath
}
