package nft

import (
	"crypto/ed25519"

	"github.com/code-payments/nft-cpi/pkg/config"
	"github.com/code-payments/nft-cpi/pkg/config/env"
	"github.com/code-payments/nft-cpi/pkg/config/file"
	"github.com/code-payments/nft-cpi/pkg/config/memory"
	"github.com/code-payments/nft-cpi/pkg/config/wrapper"
	"github.com/code-payments/nft-cpi/pkg/solana/metadata"
)

const (
	envConfigPrefix = "NFT_BUILDER_"

	MetadataProgramConfigEnvName  = envConfigPrefix + "METADATA_PROGRAM"
	MetadataProgramConfigFileKey  = "metadata_program"
	LegacyLengthWrapConfigEnvName = envConfigPrefix + "LEGACY_LENGTH_WRAP"
	LegacyLengthWrapConfigFileKey = "legacy_length_wrap"
	defaultLegacyLengthWrap       = false
	SchemaVersionConfigEnvName    = envConfigPrefix + "SCHEMA_VERSION"
	SchemaVersionConfigFileKey    = "schema_version"
	defaultSchemaVersion          = uint64(metadata.DefaultSchemaVersion)
)

var defaultMetadataProgram = metadata.ProgramKey

type conf struct {
	metadataProgram  config.PublicKey
	legacyLengthWrap config.Bool
	schemaVersion    config.Uint64
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			metadataProgram:  env.NewPublicKeyConfig(MetadataProgramConfigEnvName, defaultMetadataProgram),
			legacyLengthWrap: env.NewBoolConfig(LegacyLengthWrapConfigEnvName, defaultLegacyLengthWrap),
			schemaVersion:    env.NewUint64Config(SchemaVersionConfigEnvName, defaultSchemaVersion),
		}
	}
}

// WithFileConfigs returns configuration pulled from a configuration file
func WithFileConfigs(source *file.Source) ConfigProvider {
	return func() *conf {
		return &conf{
			metadataProgram:  source.NewPublicKeyConfig(MetadataProgramConfigFileKey, defaultMetadataProgram),
			legacyLengthWrap: source.NewBoolConfig(LegacyLengthWrapConfigFileKey, defaultLegacyLengthWrap),
			schemaVersion:    source.NewUint64Config(SchemaVersionConfigFileKey, defaultSchemaVersion),
		}
	}
}

type testOverrides struct {
	metadataProgram  ed25519.PublicKey
	legacyLengthWrap bool
	schemaVersion    uint64
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	schemaVersion := overrides.schemaVersion
	if schemaVersion == 0 {
		schemaVersion = defaultSchemaVersion
	}

	return func() *conf {
		return &conf{
			metadataProgram:  wrapper.NewPublicKeyConfig(memory.NewConfig(overrides.metadataProgram), defaultMetadataProgram),
			legacyLengthWrap: wrapper.NewBoolConfig(memory.NewConfig(overrides.legacyLengthWrap), defaultLegacyLengthWrap),
			schemaVersion:    wrapper.NewUint64Config(memory.NewConfig(schemaVersion), defaultSchemaVersion),
		}
	}
}
