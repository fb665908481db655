// Package constants defines shared constants and input types used by the
// coachmark SDL host.
package constants

import (
	"os"
	"strings"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the host.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LocaleEnvVar       = "COACHMARK_LOCALE"
	DebugEnvVar        = "COACHMARK_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical
// hardware or the keyboard.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Default timing and spacing constants.
const (
	DefaultInputDelay       = 20 * time.Millisecond // debounce between presses
	DefaultFrameDelay       = 16                    // ms between frames without vsync
	DefaultLineSpacing      = 0.2                   // fraction of font height between wrapped lines
	DefaultDimAlpha   uint8 = 168
)

// ParseVirtualButton returns the button whose GetName matches name, ignoring
// case. Unknown names return VirtualButtonUnassigned and false.
func ParseVirtualButton(name string) (VirtualButton, bool) {
	for vb := VirtualButtonUp; vb <= VirtualButtonPower; vb++ {
		if strings.EqualFold(vb.GetName(), name) {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}
