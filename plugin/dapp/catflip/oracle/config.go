// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// 环境变量优先于配置文件，私钥只建议从环境变量注入
const (
	EnvVrfKey        = "CATFLIP_ORACLE_VRF_KEY"
	EnvSignKey       = "CATFLIP_ORACLE_SIGN_KEY"
	EnvRPCAddr       = "CATFLIP_ORACLE_RPC_ADDR"
	EnvRedisAddr     = "CATFLIP_REDIS_ADDR"
	EnvRedisPassword = "CATFLIP_REDIS_PASSWORD"
	EnvKafkaBrokers  = "CATFLIP_KAFKA_BROKERS"
)

// Config oracle daemon config
type Config struct {
	Chain   ChainConfig   `toml:"chain"`
	Oracle  OracleConfig  `toml:"oracle"`
	Redis   RedisConfig   `toml:"redis"`
	Kafka   KafkaConfig   `toml:"kafka"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ChainConfig chain33 jsonrpc endpoint
type ChainConfig struct {
	RPCAddr  string `toml:"rpcAddr"`
	ParaName string `toml:"paraName"`
	// 交易手续费，0 表示使用节点默认值
	Fee int64 `toml:"fee"`
}

// OracleConfig keys and polling
type OracleConfig struct {
	// VRF 私钥 (secp256k1 标量), hex
	VrfKey string `toml:"vrfKey"`
	// secp256k1 私钥, hex
	SignKey      string        `toml:"signKey"`
	PollInterval time.Duration `toml:"pollInterval"`
	BatchSize    int32         `toml:"batchSize"`
	LockTTL      time.Duration `toml:"lockTTL"`
}

// RedisConfig 为空地址时不加锁，只适合单实例
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// KafkaConfig 为空时不发布事件
type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// MetricsConfig prometheus listen address
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig default config
func DefaultConfig() Config {
	return Config{
		Chain: ChainConfig{RPCAddr: "http://localhost:8801"},
		Oracle: OracleConfig{
			PollInterval: 3 * time.Second,
			BatchSize:    20,
			LockTTL:      time.Minute,
		},
		Kafka:   KafkaConfig{Topic: "catflip.fulfill"},
		Metrics: MetricsConfig{Addr: ":9108"},
	}
}

// LoadConfig 读取 toml，叠加 .env 与环境变量
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "decode oracle config %s", path)
		}
	}
	_ = godotenv.Load()
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	setStr(&cfg.Oracle.VrfKey, EnvVrfKey)
	setStr(&cfg.Oracle.SignKey, EnvSignKey)
	setStr(&cfg.Chain.RPCAddr, EnvRPCAddr)
	setStr(&cfg.Redis.Addr, EnvRedisAddr)
	setStr(&cfg.Redis.Password, EnvRedisPassword)
	if v := os.Getenv(EnvKafkaBrokers); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate check required fields
func (c *Config) Validate() error {
	if c.Chain.RPCAddr == "" {
		return errors.New("chain.rpcAddr is required")
	}
	if c.Oracle.VrfKey == "" {
		return errors.Errorf("oracle.vrfKey or %s is required", EnvVrfKey)
	}
	if c.Oracle.SignKey == "" {
		return errors.Errorf("oracle.signKey or %s is required", EnvSignKey)
	}
	if c.Oracle.PollInterval <= 0 {
		return errors.New("oracle.pollInterval must be positive")
	}
	if c.Oracle.BatchSize <= 0 {
		c.Oracle.BatchSize = DefaultConfig().Oracle.BatchSize
	}
	if c.Oracle.LockTTL <= 0 {
		c.Oracle.LockTTL = DefaultConfig().Oracle.LockTTL
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return errors.New("kafka.topic is required when brokers are set")
	}
	return nil
}
