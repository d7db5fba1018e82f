package config

import "time"

type Config struct {
	Mongo  Mongo
	Redis  Redis
	HTTP   HTTP
	OpenAI OpenAI

	PageSize  int           `env:"PAGE_SIZE" envDefault:"30"`
	EditDelay time.Duration `env:"EDIT_DEBOUNCE" envDefault:"800ms"`
}

type Mongo struct {
	Endpoint string `env:"MONGO_ENDPOINT" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DATABASE" envDefault:"pennywise"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDR"` // empty disables the insight cache
}

type HTTP struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type OpenAI struct {
	Token    string        `env:"OPENAI_TOKEN"`
	Model    string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	CacheTTL time.Duration `env:"INSIGHT_CACHE_TTL" envDefault:"1h"`
}
