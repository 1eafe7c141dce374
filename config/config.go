// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvframe/persist"
	"github.com/katalvlaran/lvframe/store"
	miniostore "github.com/katalvlaran/lvframe/store/minio"
	s3store "github.com/katalvlaran/lvframe/store/s3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "LVFRAME_CONFIG"

// Store kinds.
const (
	StoreMemory = "memory"
	StoreLocal  = "local"
	StoreMinio  = "minio"
	StoreS3     = "s3"
)

// Log formats.
const (
	LogAuto = "auto"
	LogText = "text"
	LogJSON = "json"
)

// Config is the application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Persist PersistConfig `yaml:"persist"`
	Log     LogConfig     `yaml:"log"`
}

// StoreConfig selects and configures the blob store.
type StoreConfig struct {
	// Kind is one of memory, local, minio, s3.
	Kind  string      `yaml:"kind"`
	Local LocalConfig `yaml:"local"`
	Minio MinioConfig `yaml:"minio"`
	S3    S3Config    `yaml:"s3"`
}

// LocalConfig configures store.LocalStore.
type LocalConfig struct {
	Root string `yaml:"root"`
}

// MinioConfig configures store/minio.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	// CreateBucket makes the bucket on first use when missing.
	CreateBucket bool `yaml:"create_bucket"`
}

// S3Config configures store/s3. Credentials come from the default AWS chain.
type S3Config struct {
	Region string `yaml:"region"`
	// Endpoint overrides the service URL for S3-compatible services.
	Endpoint string `yaml:"endpoint"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
}

// PersistConfig maps onto persist options.
type PersistConfig struct {
	Compression   string `yaml:"compression"`
	Concurrency   int    `yaml:"concurrency"`
	AddNamePrefix bool   `yaml:"add_name_prefix"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Kind:  StoreLocal,
			Local: LocalConfig{Root: "lvframe-data"},
			Minio: MinioConfig{Endpoint: "localhost:9000", Bucket: "lvframe"},
			S3:    S3Config{Bucket: "lvframe"},
		},
		Persist: PersistConfig{
			Compression:   persist.DefaultCompression.String(),
			Concurrency:   persist.DefaultConcurrency,
			AddNamePrefix: true,
		},
		Log: LogConfig{Level: "info", Format: LogAuto},
	}
}

// Load reads the file named by LVFRAME_CONFIG, or returns Default when the
// variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile reads path over Default, expands variables and validates.
// Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default, expands variables and validates.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) expandVariables() {
	for _, s := range []*string{
		&c.Store.Local.Root,
		&c.Store.Minio.Endpoint, &c.Store.Minio.AccessKey, &c.Store.Minio.SecretKey,
		&c.Store.Minio.Bucket, &c.Store.Minio.Prefix,
		&c.Store.S3.Region, &c.Store.S3.Endpoint, &c.Store.S3.Bucket, &c.Store.S3.Prefix,
	} {
		*s = expandVars(*s)
	}
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars replaces ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if v := os.Getenv(parts[1]); v != "" {
			return v
		}

		return parts[2]
	})
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Kind {
	case StoreMemory:
	case StoreLocal:
		if c.Store.Local.Root == "" {
			errs = append(errs, errors.New("store.local.root is required"))
		}
	case StoreMinio:
		if c.Store.Minio.Endpoint == "" {
			errs = append(errs, errors.New("store.minio.endpoint is required"))
		}
		if c.Store.Minio.Bucket == "" {
			errs = append(errs, errors.New("store.minio.bucket is required"))
		}
	case StoreS3:
		if c.Store.S3.Bucket == "" {
			errs = append(errs, errors.New("store.s3.bucket is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.kind must be one of %v, got %q",
			[]string{StoreMemory, StoreLocal, StoreMinio, StoreS3}, c.Store.Kind))
	}

	if _, err := persist.ParseCompression(c.Persist.Compression); err != nil {
		errs = append(errs, fmt.Errorf("persist.compression: %w", err))
	}
	if c.Persist.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("persist.concurrency must be positive, got %d", c.Persist.Concurrency))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if !slices.Contains([]string{LogAuto, LogText, LogJSON}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of auto, text, json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level ("debug", "info", "warn", "error", or "info+2").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, err
	}

	return lvl, nil
}

// PersistOptions converts the persist section into persist options.
func (c *Config) PersistOptions() []persist.Option {
	comp, err := persist.ParseCompression(c.Persist.Compression)
	if err != nil {
		comp = persist.DefaultCompression
	}
	conc := c.Persist.Concurrency
	if conc < 1 {
		conc = persist.DefaultConcurrency
	}

	return []persist.Option{persist.WithCompression(comp), persist.WithConcurrency(conc)}
}

// OpenStore builds the configured store.
func (c *Config) OpenStore(ctx context.Context) (store.Store, error) {
	sc := c.Store
	switch sc.Kind {
	case StoreMemory:
		return store.NewMemoryStore(), nil
	case StoreLocal:
		return store.NewLocalStore(sc.Local.Root)
	case StoreMinio:
		st, err := miniostore.Dial(sc.Minio.Endpoint, sc.Minio.AccessKey, sc.Minio.SecretKey,
			sc.Minio.Secure, sc.Minio.Bucket, sc.Minio.Prefix)
		if err != nil {
			return nil, err
		}
		if sc.Minio.CreateBucket {
			if err = st.EnsureBucket(ctx); err != nil {
				return nil, err
			}
		}
		return st, nil
	case StoreS3:
		return s3store.Dial(ctx, sc.S3.Region, sc.S3.Endpoint, sc.S3.Bucket, sc.S3.Prefix)
	default:
		return nil, fmt.Errorf("config: unknown store kind %q", sc.Kind)
	}
}
