package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"dario.cat/mergo"
	"github.com/magiconair/properties"
)

// GlobalPropertiesFileName is the fixed name of the configuration file
// expected directly under the oxalis home directory.
const GlobalPropertiesFileName = "oxalis-global.properties"

// KeystoreFileName is the default keystore file name, resolved relative to
// the home directory when no explicit keystore path is configured.
const KeystoreFileName = "oxalis-keystore.jks"

// defaultProperties builds the base layer of a configuration resolution: the
// static catalog defaults plus the one derived default, the keystore path,
// which depends on the resolved home directory.
func defaultProperties(home string) map[string]string {
	defaults := DefaultValues()
	defaults[PropKeystorePath] = filepath.Join(home, KeystoreFileName)

	return defaults
}

// loadPropertiesFile reads the properties file at path and layers its values
// over defaults. The file must exist and be a regular readable file,
// otherwise [ErrConfigNotFound] is returned.
//
// The file handle is released on every exit path. A close failure surfaces
// as [ErrConfigClose] only when the load itself succeeded; it never masks a
// read or parse error.
func loadPropertiesFile(path string, defaults map[string]string) (map[string]string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	resolved, loadErr := loadProperties(f, defaults)
	closeErr := f.Close()

	if loadErr != nil {
		return nil, loadErr
	}
	if closeErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigClose, path, closeErr)
	}

	return resolved, nil
}

// loadProperties decodes r as UTF-8 java-style properties text (`#`/`!`
// comments, `\` line continuations, `=` or `:` separators) and layers the
// parsed pairs over defaults, parsed values winning. Unknown keys present in
// the source are preserved; they are simply unreachable through the typed
// accessors.
//
// Decode failures are reported as [ErrConfigRead].
func loadProperties(r io.Reader, defaults map[string]string) (map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrConfigRead)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	parsed, err := loader.LoadBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigRead, err)
	}

	loaded := make(map[string]string, parsed.Len())
	for _, key := range parsed.Keys() {
		if value, ok := parsed.Get(key); ok {
			loaded[key] = value
		}
	}

	return layer(defaults, loaded)
}

// layer merges the configuration layers in increasing priority: base first,
// then overrides on top. Only keys present in overrides are applied; an
// override carrying an empty value still wins over a non-empty default.
func layer(base, overrides map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(base)+len(overrides))

	if err := mergo.Merge(&resolved, base); err != nil {
		return nil, fmt.Errorf("error merging configuration layers: %w", err)
	}

	for key, value := range overrides {
		resolved[key] = value
	}

	return resolved, nil
}
