package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Keys of all runtime configurable properties. The set is closed: every key
// the typed accessors understand is listed here and described by the catalog
// below.
const (
	PropJdbcDriverClass             = "oxalis.jdbc.driver.class"
	PropJdbcConnectionURI           = "oxalis.jdbc.connection.uri"
	PropJdbcUser                    = "oxalis.jdbc.user"
	PropJdbcPassword                = "oxalis.jdbc.password"
	PropJdbcDriverClassPath         = "oxalis.jdbc.class.path"
	PropJdbcDialect                 = "oxalis.jdbc.dialect"
	PropJdbcValidationQuery         = "oxalis.jdbc.validation.query"
	PropKeystorePath                = "oxalis.keystore"
	PropKeystorePassword            = "oxalis.keystore.password"
	PropTruststorePassword          = "oxalis.truststore.password"
	PropInboundMessageStore         = "oxalis.inbound.message.store"
	PropPersistenceClassPath        = "oxalis.persistence.class.path"
	PropInboundLoggingConfig        = "oxalis.inbound.log.config"
	PropPkiVersion                  = "oxalis.pki.version"
	PropOperationMode               = "oxalis.operation.mode"
	PropConnectionTimeout           = "oxalis.connection.timeout"
	PropReadTimeout                 = "oxalis.read.timeout"
	PropSmlHostname                 = "oxalis.sml.hostname"
	PropStatisticsPrivateKeyPath    = "oxalis.statistics.private.key"
	PropTransmissionBuilderOverride = "oxalis.transmissionbuilder.override"
)

// PropertyDef describes a single entry of the property catalog: its key, an
// optional static default, whether a resolved value is mandatory, and whether
// the value must be kept out of logs.
//
// HasDefault distinguishes "no default at all" from "default is the empty
// string"; Default is only meaningful when HasDefault is true.
//
// A required property never carries a static default, otherwise required-ness
// could not be verified.
type PropertyDef struct {
	Key        string
	Default    string
	HasDefault bool
	Required   bool
	Hidden     bool
}

// catalog is the closed, ordered set of all known properties. The order is
// stable so that property dumps in logs are reproducible between runs.
var catalog = []PropertyDef{
	{Key: PropJdbcDriverClass, Default: "com.mysql.jdbc.Driver", HasDefault: true},
	{Key: PropJdbcConnectionURI},
	{Key: PropJdbcUser},
	{Key: PropJdbcPassword, Hidden: true},
	{Key: PropJdbcDriverClassPath},
	{Key: PropJdbcDialect, Default: "H2", HasDefault: true},
	{Key: PropJdbcValidationQuery, Default: "select 1", HasDefault: true},
	{Key: PropKeystorePath, Required: true},
	{Key: PropKeystorePassword, Required: true, Hidden: true},
	{Key: PropTruststorePassword, Default: "peppol", HasDefault: true, Hidden: true},
	{Key: PropInboundMessageStore, Default: filepath.Join(os.TempDir(), "oxalis", "inbound"), HasDefault: true},
	{Key: PropPersistenceClassPath},
	{Key: PropInboundLoggingConfig, Default: "logback.xml", HasDefault: true},
	{Key: PropPkiVersion, Default: string(PkiV1), HasDefault: true},
	{Key: PropOperationMode, Default: string(ModeTest), HasDefault: true},
	{Key: PropConnectionTimeout, Default: "5", HasDefault: true},
	{Key: PropReadTimeout, Default: "5", HasDefault: true},
	{Key: PropSmlHostname, Default: "", HasDefault: true},
	{Key: PropStatisticsPrivateKeyPath},
	{Key: PropTransmissionBuilderOverride, Default: "false", HasDefault: true},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, def := range catalog {
		idx[def.Key] = i
	}
	return idx
}()

// DefinitionOf looks up the catalog entry for key.
// Returns [ErrUnknownProperty] for keys outside the closed set.
func DefinitionOf(key string) (PropertyDef, error) {
	i, ok := catalogIndex[key]
	if !ok {
		return PropertyDef{}, fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}

	return catalog[i], nil
}

// AllDefinitions returns every catalog entry in its stable declaration order.
// The returned slice is a copy; mutating it does not affect the catalog.
func AllDefinitions() []PropertyDef {
	defs := make([]PropertyDef, len(catalog))
	copy(defs, catalog)
	return defs
}

// DefaultValues returns the static defaults of the catalog as a key→value
// mapping, used as the base layer when resolving a configuration. Properties
// without a static default are absent from the map.
func DefaultValues() map[string]string {
	defaults := make(map[string]string, len(catalog))
	for _, def := range catalog {
		if def.HasDefault {
			defaults[def.Key] = def.Default
		}
	}

	return defaults
}
