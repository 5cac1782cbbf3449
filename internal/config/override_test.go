package config

import (
	"testing"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/stretchr/testify/assert"
)

func noEnv(string) string { return "" }

func envWith(value string) EnvLookup {
	return func(name string) string {
		if name == TransmissionBuilderOverrideVariable {
			return value
		}
		return ""
	}
}

// TestApplyTransmissionOverride_TestModeForcesTrue verifies that TEST mode
// forces the flag regardless of the environment.
func TestApplyTransmissionOverride_TestModeForcesTrue(t *testing.T) {
	props := map[string]string{PropTransmissionBuilderOverride: "false"}

	applyTransmissionOverride(props, ModeTest, noEnv, logger.Nop())

	assert.Equal(t, "true", props[PropTransmissionBuilderOverride])
}

// TestApplyTransmissionOverride_ProductionUnsetLeavesValue verifies that
// PRODUCTION mode with no environment override leaves the loaded value as is.
func TestApplyTransmissionOverride_ProductionUnsetLeavesValue(t *testing.T) {
	props := map[string]string{PropTransmissionBuilderOverride: "false"}

	applyTransmissionOverride(props, ModeProduction, noEnv, logger.Nop())

	assert.Equal(t, "false", props[PropTransmissionBuilderOverride])
}

// TestApplyTransmissionOverride_EnvironmentCaseInsensitive verifies that the
// environment variable matches "true" in any casing.
func TestApplyTransmissionOverride_EnvironmentCaseInsensitive(t *testing.T) {
	for _, value := range []string{"TRUE", "true", "TrUe"} {
		t.Run(value, func(t *testing.T) {
			props := map[string]string{PropTransmissionBuilderOverride: "false"}

			applyTransmissionOverride(props, ModeProduction, envWith(value), logger.Nop())

			assert.Equal(t, "true", props[PropTransmissionBuilderOverride])
		})
	}
}

// TestApplyTransmissionOverride_OtherValuesIgnored verifies that values other
// than the literal "true" do not enable the override.
func TestApplyTransmissionOverride_OtherValuesIgnored(t *testing.T) {
	for _, value := range []string{"yes", "1", "false", "truthy", ""} {
		t.Run("value="+value, func(t *testing.T) {
			props := map[string]string{PropTransmissionBuilderOverride: "false"}

			applyTransmissionOverride(props, ModeProduction, envWith(value), logger.Nop())

			assert.Equal(t, "false", props[PropTransmissionBuilderOverride])
		})
	}
}
