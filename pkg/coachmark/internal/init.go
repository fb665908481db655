// Package internal contains the SDL host behind coachmark.Tour: window and
// renderer setup, input mapping, fonts, theming and the power button watcher.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
