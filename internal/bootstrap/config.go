// Package bootstrap assembles the pool engine and its backends from command line options.
package bootstrap

import (
	"time"

	"github.com/goodnatureofminers/giftpool-backend/internal/pool/model"
)

// StoreConfig selects the pool ledger. Pools are kept in memory when RedisAddr is empty.
type StoreConfig struct {
	RedisAddr     string `long:"redis-addr" env:"GIFTPOOL_REDIS_ADDR" description:"redis address, in-memory ledger when empty"`
	RedisPassword string `long:"redis-password" env:"GIFTPOOL_REDIS_PASSWORD" description:"redis password"`
	RedisDB       int    `long:"redis-db" env:"GIFTPOOL_REDIS_DB" description:"redis database" default:"0"`
	RedisPrefix   string `long:"redis-prefix" env:"GIFTPOOL_REDIS_PREFIX" description:"redis key prefix" default:"giftpool"`
}

// JournalConfig enables the ClickHouse lifecycle journal.
type JournalConfig struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"GIFTPOOL_CLICKHOUSE_DSN" description:"ClickHouse DSN, journal disabled when empty"`
	FlushSize     int           `long:"journal-flush-size" env:"GIFTPOOL_JOURNAL_FLUSH_SIZE" description:"events per journal batch" default:"500"`
	FlushInterval time.Duration `long:"journal-flush-interval" env:"GIFTPOOL_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"1s"`
	FlushRPS      int           `long:"journal-flush-rps" env:"GIFTPOOL_JOURNAL_FLUSH_RPS" description:"max journal flushes per second" default:"10"`
}

// ChainConfig enables the settlement gateway. Pools stay off-chain when RPCURL is empty.
type ChainConfig struct {
	RPCURL         string        `long:"chain-rpc-url" env:"GIFTPOOL_CHAIN_RPC_URL" description:"settlement node RPC URL, off-chain when empty"`
	RPCUser        string        `long:"chain-rpc-user" env:"GIFTPOOL_CHAIN_RPC_USER" description:"settlement node RPC username"`
	RPCPassword    string        `long:"chain-rpc-password" env:"GIFTPOOL_CHAIN_RPC_PASSWORD" description:"settlement node RPC password"`
	ReadAttempts   int           `long:"chain-read-attempts" env:"GIFTPOOL_CHAIN_READ_ATTEMPTS" description:"attempts per chain read" default:"3"`
	ReadRetryDelay time.Duration `long:"chain-read-retry-delay" env:"GIFTPOOL_CHAIN_READ_RETRY_DELAY" description:"delay between chain read attempts" default:"500ms"`
}

// PrivacyConfig selects the enabled privacy modes and their backends. A mode is
// served by an in-process backend unless its remote URL is set.
type PrivacyConfig struct {
	Modes             []model.PrivacyMode `long:"privacy-mode" env:"GIFTPOOL_PRIVACY_MODES" env-delim:"," description:"enabled privacy modes" default:"none" default:"tee" default:"fhe"`
	WorkerCount       int                 `long:"privacy-workers" env:"GIFTPOOL_PRIVACY_WORKERS" description:"parallel ciphertext operations" default:"4"`
	EnclaveKey        string              `long:"enclave-key" env:"GIFTPOOL_ENCLAVE_KEY" description:"hex encoded 32-byte enclave key, random when empty"`
	PaillierBits      int                 `long:"paillier-bits" env:"GIFTPOOL_PAILLIER_BITS" description:"Paillier modulus size" default:"2048"`
	DecryptAfterPolls int                 `long:"decrypt-after-polls" env:"GIFTPOOL_DECRYPT_AFTER_POLLS" description:"polls before the local oracle answers" default:"1"`
	DataProtectorURL  string              `long:"data-protector-url" env:"GIFTPOOL_DATA_PROTECTOR_URL" description:"remote TEE data protector base URL"`
	RelayerURL        string              `long:"relayer-url" env:"GIFTPOOL_RELAYER_URL" description:"remote FHE relayer base URL"`
	RemoteAPIKey      string              `long:"remote-api-key" env:"GIFTPOOL_REMOTE_API_KEY" description:"API key for remote privacy backends"`
	RemoteTimeout     time.Duration       `long:"remote-timeout" env:"GIFTPOOL_REMOTE_TIMEOUT" description:"HTTP timeout for remote privacy backends" default:"30s"`
	FHEAwait          bool                `long:"fhe-await" env:"GIFTPOOL_FHE_AWAIT" description:"wait for decryption during finalization"`
	FHEPollInterval   time.Duration       `long:"fhe-poll-interval" env:"GIFTPOOL_FHE_POLL_INTERVAL" description:"decryption poll interval" default:"2s"`
	FHEMaxPolls       int                 `long:"fhe-max-polls" env:"GIFTPOOL_FHE_MAX_POLLS" description:"decryption polls during finalization" default:"5"`
}

// EngineConfig tunes the lifecycle engine.
type EngineConfig struct {
	BackendTimeout    time.Duration `long:"backend-timeout" env:"GIFTPOOL_BACKEND_TIMEOUT" description:"timeout of each privacy or chain call" default:"30s"`
	AggregateDeadline time.Duration `long:"aggregate-deadline" env:"GIFTPOOL_AGGREGATE_DEADLINE" description:"how long a pending total may be resolved" default:"24h"`
	RefreshOnRead     bool          `long:"refresh-on-read" env:"GIFTPOOL_REFRESH_ON_READ" description:"poll pending totals when a pool is read"`
}

// Config groups everything Build needs.
type Config struct {
	Store   StoreConfig   `group:"Store options"`
	Journal JournalConfig `group:"Journal options"`
	Chain   ChainConfig   `group:"Chain options"`
	Privacy PrivacyConfig `group:"Privacy options"`
	Engine  EngineConfig  `group:"Engine options"`
}
