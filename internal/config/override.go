package config

import (
	"strings"

	"github.com/MKhiriev/go-oxalis/internal/logger"
)

// TransmissionBuilderOverrideVariable is the single environment variable the
// override policy consults. Its value is matched case-insensitively against
// the literal "true".
const TransmissionBuilderOverrideVariable = "OXALIS_TRANSMISSION_BUILDER_OVERRIDE"

// EnvLookup reads one environment variable, returning "" when unset.
// It exists so the override policy can be exercised without touching the
// process environment.
type EnvLookup func(name string) string

// applyTransmissionOverride is the only automatic mutation performed on a
// resolved configuration after load and before verification: when the
// instance runs in TEST mode, or the override environment variable holds
// "true" (any casing), the transmission builder override flag is forced on.
//
// The forced flag disables transmission safety checks, so enabling it is
// logged at warning level.
func applyTransmissionOverride(props map[string]string, mode OperationalMode, lookup EnvLookup, log *logger.Logger) {
	if mode != ModeTest && !strings.EqualFold(lookup(TransmissionBuilderOverrideVariable), "true") {
		return
	}

	log.Warn().
		Str("variable", TransmissionBuilderOverrideVariable).
		Msg("transmission builder override enabled (mode=TEST or environment override); do not use in production")

	props[PropTransmissionBuilderOverride] = "true"
}
