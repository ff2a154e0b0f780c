package config

type Redis struct {
	Address            string `env:"REDIS_ADDRESS,required"`
	Username           string `env:"REDIS_USERNAME" envDefault:""`
	Password           string `env:"REDIS_PASSWORD" envDefault:""`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"8"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"4"`
}
