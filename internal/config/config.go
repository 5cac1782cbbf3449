// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-oxalis/internal/logger"
)

// GlobalConfiguration is the resolved runtime configuration of the access
// point: a property map layered from catalog defaults, the derived keystore
// default, the global properties file (or a caller-supplied stream), and the
// transmission builder override policy.
//
// A GlobalConfiguration is constructed once at startup and read-only
// afterwards, so concurrent reads need no locking. The single exception is
// [GlobalConfiguration.SetTransmissionBuilderOverride], a test-only mutator
// that callers must serialize themselves.
type GlobalConfiguration struct {
	props    map[string]string
	home     string
	verified atomic.Bool
	log      *logger.Logger
}

// NewGlobalConfiguration locates the oxalis home directory, loads the global
// properties file underneath it, applies the transmission builder override
// policy, verifies every required property, and logs the non-hidden result.
//
// Any failure along the way aborts construction; a process must never serve
// with a partially resolved configuration.
func NewGlobalConfiguration(log *logger.Logger) (*GlobalConfiguration, error) {
	home, err := LocateHome(log)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(home, GlobalPropertiesFileName)
	log.Debug().Str("file", path).Msg("loading global configuration")

	resolved, err := loadPropertiesFile(path, defaultProperties(home))
	if err != nil {
		return nil, err
	}

	return newGlobalConfiguration(home, resolved, os.Getenv, log)
}

// NewGlobalConfigurationFromReader builds a configuration from configuration
// bytes the caller already possesses (embedded setups, tests) instead of the
// properties file under home. Parse rules, override policy, and verification
// are identical to [NewGlobalConfiguration].
func NewGlobalConfigurationFromReader(home string, r io.Reader, log *logger.Logger) (*GlobalConfiguration, error) {
	resolved, err := loadProperties(r, defaultProperties(home))
	if err != nil {
		return nil, err
	}

	return newGlobalConfiguration(home, resolved, os.Getenv, log)
}

func newGlobalConfiguration(home string, resolved map[string]string, lookup EnvLookup, log *logger.Logger) (*GlobalConfiguration, error) {
	cfg := &GlobalConfiguration{
		props: resolved,
		home:  home,
		log:   log,
	}

	mode, err := cfg.ModeOfOperation()
	if err != nil {
		return nil, err
	}

	applyTransmissionOverride(cfg.props, mode, lookup, log)

	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	cfg.logProperties()

	return cfg, nil
}

// Verify checks that every property the catalog marks required has resolved
// to a value. It fails fast with [ErrMissingRequiredProperty] on the first
// violation instead of aggregating all of them.
//
// Verification runs at most once per configuration: after the first
// successful pass the guard is set and later calls return nil without
// re-scanning, even if the map was mutated through the test-only setter in
// the meantime. The guard is an atomic flag, so racing first calls are safe.
func (c *GlobalConfiguration) Verify() error {
	if c.verified.Load() {
		return nil
	}

	c.log.Info().Msg("verifying properties")
	for _, def := range catalog {
		if !def.Required {
			continue
		}
		if _, ok := c.props[def.Key]; !ok {
			return fmt.Errorf("%w: %s, please inspect your config file", ErrMissingRequiredProperty, def.Key)
		}
	}

	c.verified.Store(true)
	return nil
}

// Verified reports whether the one-shot verification guard has been set.
func (c *GlobalConfiguration) Verified() bool {
	return c.verified.Load()
}

// logProperties dumps every non-hidden property in catalog order at info
// level. Values of hidden properties (passwords) never reach the log.
func (c *GlobalConfiguration) logProperties() {
	for _, def := range catalog {
		if def.Hidden {
			continue
		}
		c.log.Info().Msgf("%s = %s", def.Key, c.props[def.Key])
	}
}

// Property returns the resolved value for any key, including keys outside
// the catalog that were preserved from the source. The second return value
// distinguishes an absent key from an empty value.
func (c *GlobalConfiguration) Property(key string) (string, bool) {
	value, ok := c.props[key]
	return value, ok
}

// HomeDir returns the oxalis home directory this configuration was resolved
// against.
func (c *GlobalConfiguration) HomeDir() string {
	return c.home
}

func (c *GlobalConfiguration) JdbcDriverClassName() string {
	return c.props[PropJdbcDriverClass]
}

func (c *GlobalConfiguration) JdbcConnectionURI() string {
	return c.props[PropJdbcConnectionURI]
}

func (c *GlobalConfiguration) JdbcUsername() string {
	return c.props[PropJdbcUser]
}

func (c *GlobalConfiguration) JdbcPassword() string {
	return c.props[PropJdbcPassword]
}

func (c *GlobalConfiguration) JdbcDriverClassPath() string {
	return c.props[PropJdbcDriverClassPath]
}

// JdbcDialect names the storage backend implementation the statistics
// repository registry should select.
func (c *GlobalConfiguration) JdbcDialect() string {
	return c.props[PropJdbcDialect]
}

func (c *GlobalConfiguration) ValidationQuery() string {
	return c.props[PropJdbcValidationQuery]
}

// KeystorePath returns the path of the access point keystore. Unless set
// explicitly it defaults to oxalis-keystore.jks under the home directory.
func (c *GlobalConfiguration) KeystorePath() string {
	return c.props[PropKeystorePath]
}

func (c *GlobalConfiguration) KeystorePassword() string {
	return c.props[PropKeystorePassword]
}

func (c *GlobalConfiguration) TruststorePassword() string {
	return c.props[PropTruststorePassword]
}

func (c *GlobalConfiguration) InboundMessageStore() string {
	return c.props[PropInboundMessageStore]
}

func (c *GlobalConfiguration) PersistenceClassPath() string {
	return c.props[PropPersistenceClassPath]
}

func (c *GlobalConfiguration) InboundLoggingConfiguration() string {
	return c.props[PropInboundLoggingConfig]
}

// PkiVersion returns the configured PKI generation.
// Fails with [ErrUnknownEnumValue] when the stored value is not a member.
func (c *GlobalConfiguration) PkiVersion() (PkiVersion, error) {
	return ParsePkiVersion(c.props[PropPkiVersion])
}

// ModeOfOperation returns the configured operational mode.
// Fails with [ErrUnknownEnumValue] when the stored value is not a member.
func (c *GlobalConfiguration) ModeOfOperation() (OperationalMode, error) {
	return ParseOperationalMode(c.props[PropOperationMode])
}

// ConnectTimeout returns the outbound connect timeout in seconds.
// Fails with [ErrInvalidNumberFormat] when the stored value is not an integer.
func (c *GlobalConfiguration) ConnectTimeout() (int, error) {
	return c.intProperty(PropConnectionTimeout)
}

// ReadTimeout returns the outbound read timeout in seconds.
// Fails with [ErrInvalidNumberFormat] when the stored value is not an integer.
func (c *GlobalConfiguration) ReadTimeout() (int, error) {
	return c.intProperty(PropReadTimeout)
}

func (c *GlobalConfiguration) SmlHostname() string {
	return c.props[PropSmlHostname]
}

func (c *GlobalConfiguration) StatisticsPrivateKeyPath() string {
	return c.props[PropStatisticsPrivateKeyPath]
}

// TransmissionBuilderOverride reports whether the transmission builder
// safety checks are overridden. Only the literal "true" (any casing) counts
// as enabled.
func (c *GlobalConfiguration) TransmissionBuilderOverride() bool {
	return strings.EqualFold(c.props[PropTransmissionBuilderOverride], "true")
}

// SetTransmissionBuilderOverride flips the transmission builder override
// flag at runtime.
//
// This exists to assist unit tests ONLY and must not be used in production.
// It is the single mutation allowed after construction and is not safe for
// concurrent use with readers of the flag.
func (c *GlobalConfiguration) SetTransmissionBuilderOverride(override bool) {
	c.props[PropTransmissionBuilderOverride] = strconv.FormatBool(override)
}

func (c *GlobalConfiguration) intProperty(key string) (int, error) {
	value, err := strconv.Atoi(c.props[key])
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumberFormat, key, c.props[key])
	}

	return value, nil
}
