package config

import "fmt"

// OperationalMode tells the access point whether it is talking to the live
// PEPPOL network or to test infrastructure.
type OperationalMode string

const (
	// ModeProduction enables live transmission against the production network.
	ModeProduction OperationalMode = "PRODUCTION"

	// ModeTest marks the instance as a test installation. Test mode relaxes
	// transmission safety checks via the transmission builder override.
	ModeTest OperationalMode = "TEST"
)

// ParseOperationalMode maps a stored property value onto an [OperationalMode].
// Matching is case-sensitive; anything else yields [ErrUnknownEnumValue].
func ParseOperationalMode(s string) (OperationalMode, error) {
	switch OperationalMode(s) {
	case ModeProduction:
		return ModeProduction, nil
	case ModeTest:
		return ModeTest, nil
	default:
		return "", fmt.Errorf("%w: operational mode %q", ErrUnknownEnumValue, s)
	}
}

// PkiVersion identifies the generation of the PEPPOL PKI the certificates
// belong to.
type PkiVersion string

const (
	PkiV1 PkiVersion = "V1"
	PkiV2 PkiVersion = "V2"
)

// ParsePkiVersion maps a stored property value onto a [PkiVersion].
// Matching is case-sensitive; anything else yields [ErrUnknownEnumValue].
func ParsePkiVersion(s string) (PkiVersion, error) {
	switch PkiVersion(s) {
	case PkiV1:
		return PkiV1, nil
	case PkiV2:
		return PkiV2, nil
	default:
		return "", fmt.Errorf("%w: pki version %q", ErrUnknownEnumValue, s)
	}
}
