// Package config resolves, validates, and exposes the runtime configuration
// of the access point.
//
// Configuration is assembled in the following priority order (later layers
// override earlier ones):
//  1. Static catalog defaults
//  2. The derived keystore path default (home-directory dependent)
//  3. The oxalis-global.properties file under the home directory, or a
//     caller-supplied byte stream
//  4. The transmission builder override policy
//
// The property catalog is closed: every recognized key is declared in
// [AllDefinitions] together with its default, required, and hidden flags.
// The main entry points are [NewGlobalConfiguration] for file-backed setups
// and [NewGlobalConfigurationFromReader] for embedded and test contexts.
package config
