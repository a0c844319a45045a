package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "localhost"
dbname = "cleaning"
user = "postgres"
password = "secret"
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 30, cfg.Scheduling.PaddingDays)
	assert.Equal(t, 15, cfg.Scheduling.CheckInHour)
	assert.Equal(t, 11, cfg.Scheduling.CheckOutHour)
	assert.Equal(t, "UTC", cfg.Scheduling.Timezone)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=cleaning sslmode=disable",
		cfg.Database.DSN())
}

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090

[database]
host = "db"
port = 6432
dbname = "cleaning"

[metrics]
enabled = true
service_name = "cleaner"

[scheduling]
padding_days = 14
check_in_hour = 14
check_out_hour = 10
timezone = "Europe/Moscow"

[notifications]
enabled = true
brokers = "kafka-1:9092, kafka-2:9092,"
topic = "cleaning"
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 14, cfg.Scheduling.PaddingDays)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Notifications.BrokerList())

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing database host", data: `[database]
dbname = "x"`},
		{name: "bad port", data: minimalConfig + `
[server]
http_port = 70000`},
		{name: "bad check-in hour", data: minimalConfig + `
[scheduling]
check_in_hour = 25`},
		{name: "unknown timezone", data: minimalConfig + `
[scheduling]
timezone = "Mars/Olympus"`},
		{name: "notifications without brokers", data: minimalConfig + `
[notifications]
enabled = true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[database\nhost=")
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cleaning", cfg.Database.DBName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
