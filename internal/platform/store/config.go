package store

import (
	"time"

	"meanin/internal/platform/config"
)

// Config aggregates backend settings
type Config struct {
	AppName string
	PG      PGConfig
	CH      CHConfig
	RDS     RedisConfig
}

// PGConfig configures the pgx pool
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	MinConns    int32
	Lifetime    time.Duration
	LogSQL      bool
	SlowQueryMs int
	// ConnectAttempts bounds the boot-time ping loop
	ConnectAttempts int
}

// CHConfig configures the ClickHouse connection
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
}

// RedisConfig configures the Redis client
type RedisConfig struct {
	Enabled bool
	Addr    string
	DB      int
	TTL     time.Duration
}

// ConfigFromEnv reads SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_*.
// Postgres is mandatory; the others are opt-in.
func ConfigFromEnv(root config.Conf, appName string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	rds := root.Prefix("SERVICE_REDIS_")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:         true,
			URL:             pg.MustString("DBURL"),
			MaxConns:        int32(pg.MayInt("MAXCONNS", 8)),
			MinConns:        int32(pg.MayInt("MINCONNS", 0)),
			Lifetime:        pg.MayDuration("CONN_LIFETIME", 0),
			LogSQL:          pg.MayBool("LOGSQL", false),
			SlowQueryMs:     pg.MayInt("SLOWMS", 200),
			ConnectAttempts: pg.MayInt("CONNECT_ATTEMPTS", 20),
		},
		CH: CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
			URL:     ch.MayString("DBURL", "clickhouse://localhost:9000/default"),
			Role:    appName,
		},
		RDS: RedisConfig{
			Enabled: rds.MayBool("ENABLED", false),
			Addr:    rds.MayString("ADDR", "localhost:6379"),
			DB:      rds.MayInt("DB", 0),
			TTL:     rds.MayDuration("TTL", 24*time.Hour),
		},
	}
}
