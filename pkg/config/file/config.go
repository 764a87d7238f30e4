package file

import (
	"context"
	"crypto/ed25519"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/code-payments/nft-cpi/pkg/config"
	"github.com/code-payments/nft-cpi/pkg/config/wrapper"
)

// Source is a configuration file read through viper. Configs created from a
// Source observe the values present when the file was read.
type Source struct {
	v *viper.Viper
}

// Load reads the configuration file at path. The format is inferred from the
// file extension.
func Load(path string) (*Source, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return &Source{v: v}, nil
}

// Read parses configuration of the given type (yaml, json, toml, ...) from r.
func Read(configType string, r io.Reader) (*Source, error) {
	v := viper.New()
	v.SetConfigType(configType)

	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s config", configType)
	}
	return &Source{v: v}, nil
}

// IsSet reports whether the file holds a value for key.
func (s *Source) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// Unmarshal decodes the whole file into dst using mapstructure tags.
func (s *Source) Unmarshal(dst interface{}) error {
	return s.v.Unmarshal(dst)
}

type conf struct {
	v   *viper.Viper
	key string
}

// NewConfig returns a config.Config for key. Values are surfaced as their
// string rendering, the same shape the env source produces.
func (s *Source) NewConfig(key string) config.Config {
	return &conf{
		v:   s.v,
		key: key,
	}
}

// Get implements Config.Get
func (c *conf) Get(_ context.Context) (interface{}, error) {
	if !c.v.IsSet(c.key) {
		return nil, config.ErrNoValue
	}

	val := c.v.GetString(c.key)
	if len(val) == 0 {
		return nil, config.ErrNoValue
	}
	return []byte(val), nil
}

// Shutdown implements Config.Shutdown
func (c *conf) Shutdown() {
}

// NewBoolConfig creates a file-based bool config
func (s *Source) NewBoolConfig(key string, defaultValue bool) config.Bool {
	return wrapper.NewBoolConfig(s.NewConfig(key), defaultValue)
}

// NewUint64Config creates a file-based uint64 config
func (s *Source) NewUint64Config(key string, defaultValue uint64) config.Uint64 {
	return wrapper.NewUint64Config(s.NewConfig(key), defaultValue)
}

// NewStringConfig creates a file-based string config
func (s *Source) NewStringConfig(key string, defaultValue string) config.String {
	return wrapper.NewStringConfig(s.NewConfig(key), defaultValue)
}

// NewPublicKeyConfig creates a file-based config holding a base58 account
// address
func (s *Source) NewPublicKeyConfig(key string, defaultValue ed25519.PublicKey) config.PublicKey {
	return wrapper.NewPublicKeyConfig(s.NewConfig(key), defaultValue)
}
