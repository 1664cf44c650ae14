package conf

import (
	"fmt"

	"github.com/spf13/viper"
)

// Environment enum
type Environment int

const (
	LocalEnvironmentEnum Environment = iota
	MainnetEnvironmentEnum
	TestnetEnvironmentEnum
)

// SystemEnvironmentEnum current runtime environment, set by the -env flag
var SystemEnvironmentEnum = MainnetEnvironmentEnum

// GetYaml return config file path for the current environment
func GetYaml() string {
	switch SystemEnvironmentEnum {
	case LocalEnvironmentEnum:
		return "conf/bridge_loc.yaml"
	case TestnetEnvironmentEnum:
		return "conf/bridge_testnet.yaml"
	default:
		return "conf/bridge_mainnet.yaml"
	}
}

// Config application configuration structure
type Config struct {
	// Network configuration
	Net            string
	Port           string // Bridge service port
	SwaggerBaseUrl string // Swagger API base URL (e.g., "example.com:7291")

	// Target asset ledger configuration
	Ledger LedgerConfig

	// Supported EVM chains
	Chains []ChainInstanceConfig

	// Idempotency store configuration
	Store StoreConfig

	// Blob storage configuration (backend of the "blob" store type)
	Storage StorageConfig

	// Redis configuration
	Redis RedisConfig

	// Issuance event feed configuration
	Events EventsConfig
}

// LedgerConfig target asset ledger configuration
type LedgerConfig struct {
	QueryUrl     string // Ledger query endpoint base URL
	RemoteDerive bool   // Canonicalize derived codes through the ledger instead of locally
}

// ChainInstanceConfig single EVM chain configuration. The chain id is not
// configured; it is probed from the endpoint at startup.
type ChainInstanceConfig struct {
	RpcUrl    string   `mapstructure:"rpc_url"`   // JSON-RPC URL
	Contracts []string `mapstructure:"contracts"` // Admitted token contract addresses
}

// StoreConfig idempotency store configuration
type StoreConfig struct {
	Type         string // Store type: blob, pebble, mysql
	DataDir      string // PebbleDB data directory
	Dsn          string // MySQL DSN
	MaxOpenConns int    // MySQL max open connections
	MaxIdleConns int    // MySQL max idle connections
}

// StorageConfig blob storage configuration
type StorageConfig struct {
	Type  string
	Local LocalStorageConfig
	OSS   OSSStorageConfig
	S3    S3StorageConfig
	MinIO MinIOStorageConfig
}

// LocalStorageConfig local storage configuration
type LocalStorageConfig struct {
	BasePath string
}

// OSSStorageConfig OSS storage configuration
type OSSStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// S3StorageConfig AWS S3 storage configuration
type S3StorageConfig struct {
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string // Optional custom endpoint
}

// MinIOStorageConfig MinIO storage configuration
type MinIOStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig redis configuration
type RedisConfig struct {
	Enabled  bool   // Enable Redis lookup cache
	Host     string // Redis host
	Port     int    // Redis port
	Password string // Redis password (optional)
	DB       int    // Redis database number
	CacheTTL int    // Cache TTL in seconds (default: 300)
}

// EventsConfig issuance event feed configuration
type EventsConfig struct {
	ZmqEnabled bool   // Publish committed issuances over ZMQ
	ZmqAddress string // ZMQ PUB bind address (e.g., "tcp://127.0.0.1:28391")
}

// Cfg global configuration instance
var Cfg *Config

// InitConfig initialize configuration
func InitConfig() error {
	viper.SetConfigFile(GetYaml())
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("Fatal error config file: %s", err)
	}

	// Create configuration instance
	Cfg = &Config{
		Net:            viper.GetString("net"),
		Port:           viper.GetString("port"),
		SwaggerBaseUrl: viper.GetString("swagger_base_url"),

		Ledger: LedgerConfig{
			QueryUrl:     viper.GetString("ledger.query_url"),
			RemoteDerive: viper.GetBool("ledger.remote_derive"),
		},

		Store: StoreConfig{
			Type:         viper.GetString("store.type"),
			DataDir:      viper.GetString("store.data_dir"),
			Dsn:          viper.GetString("store.dsn"),
			MaxOpenConns: viper.GetInt("store.max_open_conns"),
			MaxIdleConns: viper.GetInt("store.max_idle_conns"),
		},

		Storage: StorageConfig{
			Type: viper.GetString("storage.type"),
			Local: LocalStorageConfig{
				BasePath: viper.GetString("storage.local.base_path"),
			},
			OSS: OSSStorageConfig{
				Endpoint:  viper.GetString("storage.oss.endpoint"),
				AccessKey: viper.GetString("storage.oss.access_key"),
				SecretKey: viper.GetString("storage.oss.secret_key"),
				Bucket:    viper.GetString("storage.oss.bucket"),
			},
			S3: S3StorageConfig{
				Region:    viper.GetString("storage.s3.region"),
				AccessKey: viper.GetString("storage.s3.access_key"),
				SecretKey: viper.GetString("storage.s3.secret_key"),
				Bucket:    viper.GetString("storage.s3.bucket"),
				Endpoint:  viper.GetString("storage.s3.endpoint"),
			},
			MinIO: MinIOStorageConfig{
				Endpoint:  viper.GetString("storage.minio.endpoint"),
				AccessKey: viper.GetString("storage.minio.access_key"),
				SecretKey: viper.GetString("storage.minio.secret_key"),
				Bucket:    viper.GetString("storage.minio.bucket"),
				UseSSL:    viper.GetBool("storage.minio.use_ssl"),
			},
		},

		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			CacheTTL: viper.GetInt("redis.cache_ttl"),
		},

		Events: EventsConfig{
			ZmqEnabled: viper.GetBool("events.zmq_enabled"),
			ZmqAddress: viper.GetString("events.zmq_address"),
		},
	}

	// Supported chains
	var chains []ChainInstanceConfig
	if err := viper.UnmarshalKey("chains", &chains); err != nil {
		return fmt.Errorf("failed to parse chains config: %w", err)
	}
	if len(chains) == 0 {
		return fmt.Errorf("no supported chains configured")
	}
	Cfg.Chains = chains

	// Defaults
	if Cfg.Store.Type == "" {
		Cfg.Store.Type = "blob"
	}
	if Cfg.Redis.CacheTTL <= 0 {
		Cfg.Redis.CacheTTL = 300
	}

	return nil
}
