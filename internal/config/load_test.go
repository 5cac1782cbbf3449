package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── loadProperties (stream) ───────────────────────────────────────────────────

// TestLoadProperties_OverridesDefaults verifies the layering order: a value
// parsed from the stream wins over the catalog default it shadows.
func TestLoadProperties_OverridesDefaults(t *testing.T) {
	defaults := map[string]string{PropJdbcDialect: "H2", PropReadTimeout: "5"}

	resolved, err := loadProperties(strings.NewReader("oxalis.jdbc.dialect=MySQL\n"), defaults)
	require.NoError(t, err)

	assert.Equal(t, "MySQL", resolved[PropJdbcDialect])
	assert.Equal(t, "5", resolved[PropReadTimeout], "untouched default must survive")
}

// TestLoadProperties_PreservesUnknownKeys verifies forward compatibility:
// keys outside the catalog are kept, not rejected.
func TestLoadProperties_PreservesUnknownKeys(t *testing.T) {
	resolved, err := loadProperties(strings.NewReader("some.future.key=42\n"), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "42", resolved["some.future.key"])
}

// TestLoadProperties_PropertySyntax verifies java property file syntax:
// comment lines, colon separators, and backslash line continuations.
func TestLoadProperties_PropertySyntax(t *testing.T) {
	src := strings.Join([]string{
		"# hash comment",
		"! bang comment",
		"oxalis.jdbc.user: skrue",
		"oxalis.jdbc.connection.uri=jdbc:mysql://localhost:3306/\\",
		"oxalis_test",
		"",
	}, "\n")

	resolved, err := loadProperties(strings.NewReader(src), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "skrue", resolved[PropJdbcUser])
	assert.Equal(t, "jdbc:mysql://localhost:3306/oxalis_test", resolved[PropJdbcConnectionURI])
}

// TestLoadProperties_EmptyValueOverridesDefault verifies that an explicit
// empty value in the source still wins over a non-empty default.
func TestLoadProperties_EmptyValueOverridesDefault(t *testing.T) {
	defaults := map[string]string{PropJdbcValidationQuery: "select 1"}

	resolved, err := loadProperties(strings.NewReader("oxalis.jdbc.validation.query=\n"), defaults)
	require.NoError(t, err)

	value, ok := resolved[PropJdbcValidationQuery]
	require.True(t, ok)
	assert.Equal(t, "", value)
}

// TestLoadProperties_InvalidUTF8 verifies that a stream which is not valid
// UTF-8 fails with ErrConfigRead.
func TestLoadProperties_InvalidUTF8(t *testing.T) {
	_, err := loadProperties(strings.NewReader("oxalis.jdbc.user=\xff\xfe\n"), map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigRead)
}

// TestLayer_AppliesOnlyPresentKeys verifies the merge touches exactly the
// keys present in the override layer: shadowed keys are replaced, an empty
// override still wins, and every other base key survives unchanged.
func TestLayer_AppliesOnlyPresentKeys(t *testing.T) {
	base := map[string]string{
		PropJdbcDialect:         "H2",
		PropConnectionTimeout:      "1",
		PropJdbcValidationQuery: "select 1",
	}
	overrides := map[string]string{
		PropConnectionTimeout:      "30",
		PropJdbcValidationQuery: "",
	}

	resolved, err := layer(base, overrides)
	require.NoError(t, err)

	assert.Equal(t, "H2", resolved[PropJdbcDialect], "base key absent from overrides must survive")
	assert.Equal(t, "30", resolved[PropConnectionTimeout])
	assert.Equal(t, "", resolved[PropJdbcValidationQuery])
	assert.Len(t, resolved, 3)
}

// TestLoadProperties_DoesNotMutateDefaults verifies the base layer map stays
// untouched by a load.
func TestLoadProperties_DoesNotMutateDefaults(t *testing.T) {
	defaults := map[string]string{PropJdbcDialect: "H2"}

	_, err := loadProperties(strings.NewReader("oxalis.jdbc.dialect=Oracle\n"), defaults)
	require.NoError(t, err)

	assert.Equal(t, "H2", defaults[PropJdbcDialect])
}

// ── loadPropertiesFile ────────────────────────────────────────────────────────

// TestLoadPropertiesFile_Missing verifies that a nonexistent file fails with
// ErrConfigNotFound naming the path.
func TestLoadPropertiesFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), GlobalPropertiesFileName)

	_, err := loadPropertiesFile(path, map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), path)
}

// TestLoadPropertiesFile_NotARegularFile verifies that a directory at the
// expected path fails with ErrConfigNotFound.
func TestLoadPropertiesFile_NotARegularFile(t *testing.T) {
	dir := t.TempDir()

	_, err := loadPropertiesFile(dir, map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

// TestLoadPropertiesFile_Loads verifies the happy path through a real file.
func TestLoadPropertiesFile_Loads(t *testing.T) {
	path := filepath.Join(t.TempDir(), GlobalPropertiesFileName)
	require.NoError(t, os.WriteFile(path, []byte("oxalis.sml.hostname=sml.peppolcentral.org\n"), 0o600))

	resolved, err := loadPropertiesFile(path, map[string]string{PropJdbcDialect: "H2"})
	require.NoError(t, err)

	assert.Equal(t, "sml.peppolcentral.org", resolved[PropSmlHostname])
	assert.Equal(t, "H2", resolved[PropJdbcDialect])
}

// ── defaultProperties ─────────────────────────────────────────────────────────

// TestDefaultProperties_DerivedKeystorePath verifies the one home-dependent
// default: the keystore path under the home directory.
func TestDefaultProperties_DerivedKeystorePath(t *testing.T) {
	defaults := defaultProperties("/var/oxalis")

	assert.Equal(t, filepath.Join("/var/oxalis", KeystoreFileName), defaults[PropKeystorePath])
	assert.Equal(t, "H2", defaults[PropJdbcDialect], "static defaults must be carried along")
}
