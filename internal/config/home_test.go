package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-oxalis/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveHome_ExplicitOverrideWins verifies that an explicit OXALIS_HOME
// value beats every conventional location.
func TestResolveHome_ExplicitOverrideWins(t *testing.T) {
	home := resolveHome(homeOverrides{Home: "/opt/oxalis"}, func() (string, error) {
		return "/home/steinar", nil
	})

	assert.Equal(t, "/opt/oxalis", home)
}

// TestResolveHome_UserHomeConvention verifies the per-user ".oxalis"
// convention when no override is set.
func TestResolveHome_UserHomeConvention(t *testing.T) {
	home := resolveHome(homeOverrides{}, func() (string, error) {
		return "/home/steinar", nil
	})

	assert.Equal(t, filepath.Join("/home/steinar", ".oxalis"), home)
}

// TestResolveHome_TempFallback verifies the process-wide fallback when the
// user home directory cannot be determined.
func TestResolveHome_TempFallback(t *testing.T) {
	home := resolveHome(homeOverrides{}, func() (string, error) {
		return "", errors.New("no home")
	})

	assert.Equal(t, filepath.Join(os.TempDir(), "oxalis"), home)
}

// TestLocateHome_ReadsEnvironment verifies the full path through the
// environment parser.
func TestLocateHome_ReadsEnvironment(t *testing.T) {
	t.Setenv("OXALIS_HOME", "/srv/oxalis")

	home, err := LocateHome(logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/srv/oxalis", home)
}

// TestLocateHome_DoesNotCreateDirectory verifies the locator only reports the
// directory and never creates it.
func TestLocateHome_DoesNotCreateDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	t.Setenv("OXALIS_HOME", missing)

	home, err := LocateHome(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, missing, home)

	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr))
}
