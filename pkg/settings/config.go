package settings

type Config struct {
	Server     Server     `mapstructure:"server"`
	Logger     Logger     `mapstructure:"logger"`
	Collection Collection `mapstructure:"collection"`
	Events     Events     `mapstructure:"events"`
	Redis      Redis      `mapstructure:"redis"`
	Kafka      Kafka      `mapstructure:"kafka"`
}

// Server is the configuration for the server
type Server struct {
	Mode            string   `mapstructure:"mode" validate:"omitempty,oneof=debug release test"`
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port" validate:"gte=0,lte=65535"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // Seconds
	AllowOrigins    []string `mapstructure:"allow_origins"`
}

// Collection is the configuration for the simulated stack/queue
type Collection struct {
	Capacity int    `mapstructure:"capacity" validate:"gte=1"`
	Mode     string `mapstructure:"mode" validate:"oneof=stack queue"`
}

// Events is the configuration for post-operation state publication
type Events struct {
	Sink             string `mapstructure:"sink" validate:"oneof=none redis kafka all"`
	Codec            string `mapstructure:"codec" validate:"oneof=json msgpack"`
	Channel          string `mapstructure:"channel"` // Redis pub/sub channel
	Topic            string `mapstructure:"topic"`   // Kafka topic
	Session          string `mapstructure:"session"` // Empty generates a random session id
	PublishTimeoutMs int    `mapstructure:"publish_timeout_ms" validate:"gte=0"`
	AsyncBuffer      int    `mapstructure:"async_buffer" validate:"gte=0"` // 0 publishes synchronously; rounded up to a power of two
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Redis is the configuration for Redis
type Redis struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Password        string `mapstructure:"password"`
	Database        int    `mapstructure:"database"`
	PoolSize        int    `mapstructure:"pool_size"`
	MinIdleConns    int    `mapstructure:"min_idle_conns"`
	PoolTimeout     int    `mapstructure:"pool_timeout"`
	DialTimeout     int    `mapstructure:"dial_timeout"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	MaxRetries      int    `mapstructure:"max_retries"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff"`
	MinRetryBackoff int    `mapstructure:"min_retry_backoff"`
}

// Kafka is the configuration for Kafka
type Kafka struct {
	Brokers         []string `mapstructure:"brokers"`
	ClientID        string   `mapstructure:"client_id"`
	FlushFrequency  int      `mapstructure:"flush_frequency"`   // Milliseconds
	FlushBytes      int      `mapstructure:"flush_bytes"`       // Bytes
	MaxMessageBytes int      `mapstructure:"max_message_bytes"` // Bytes
	Timeout         int      `mapstructure:"timeout"`           // Seconds
	MaxRetries      int      `mapstructure:"max_retries"`       // Number of retries
	RetryBackoff    int      `mapstructure:"retry_backoff"`     // Milliseconds
}
