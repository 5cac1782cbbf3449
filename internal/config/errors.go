package config

import "errors"

// Sentinel errors returned by the configuration loading and accessor
// machinery. Callers should use [errors.Is] to match against these values.
// All of them are fatal at startup: a process with a broken configuration
// must not reach a serving state.
var (
	// ErrConfigNotFound is returned when the global properties file does not
	// exist at the expected location under the home directory, or exists but
	// is not a regular readable file.
	ErrConfigNotFound = errors.New("global configuration file not found")

	// ErrConfigRead is returned when the properties file or stream cannot be
	// read or decoded as UTF-8 key/value text.
	ErrConfigRead = errors.New("unable to read global configuration")

	// ErrConfigClose is returned when closing the properties file fails after
	// an otherwise successful load. A close failure never masks an earlier
	// read or parse error.
	ErrConfigClose = errors.New("unable to close global configuration file")

	// ErrMissingRequiredProperty is returned by [GlobalConfiguration.Verify]
	// when a property marked required resolves to no value at all. The
	// wrapped message names the offending key.
	ErrMissingRequiredProperty = errors.New("required property is not set")

	// ErrInvalidNumberFormat is returned by integer accessors when the stored
	// value cannot be parsed as an integer.
	ErrInvalidNumberFormat = errors.New("property value is not a valid integer")

	// ErrUnknownEnumValue is returned by enumeration accessors when the
	// stored value matches no enumeration member. Matching is case-sensitive.
	ErrUnknownEnumValue = errors.New("property value is not a known enum member")

	// ErrUnknownProperty is returned by [DefinitionOf] for keys outside the
	// closed catalog. This signals a programming error, not a bad config file.
	ErrUnknownProperty = errors.New("unknown configuration property")
)
