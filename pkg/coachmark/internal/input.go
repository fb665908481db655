package internal

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/constants"
	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a hardware event translated to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputMapping binds keyboard keys and controller buttons to virtual buttons.
type InputMapping struct {
	Keyboard   map[sdl.Keycode]constants.VirtualButton
	Controller map[uint8]constants.VirtualButton
}

// DefaultInputMapping covers a desktop keyboard and a standard game
// controller. With flipFaceButtons unset, A and B are swapped to match the
// Nintendo style layout of most handhelds.
func DefaultInputMapping(flipFaceButtons bool) InputMapping {
	m := InputMapping{
		Keyboard: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_SPACE:     constants.VirtualButtonA,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_ESCAPE:    constants.VirtualButtonMenu,
			sdl.K_x:         constants.VirtualButtonX,
			sdl.K_y:         constants.VirtualButtonY,
			sdl.K_q:         constants.VirtualButtonL1,
			sdl.K_e:         constants.VirtualButtonR1,
			sdl.K_TAB:       constants.VirtualButtonSelect,
			sdl.K_s:         constants.VirtualButtonStart,
		},
		Controller: map[uint8]constants.VirtualButton{
			uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			uint8(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonB,
			uint8(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonA,
			uint8(sdl.CONTROLLER_BUTTON_X):             constants.VirtualButtonY,
			uint8(sdl.CONTROLLER_BUTTON_Y):             constants.VirtualButtonX,
			uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
			uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
			uint8(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
			uint8(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
			uint8(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
		},
	}

	if flipFaceButtons {
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_A)] = constants.VirtualButtonA
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_B)] = constants.VirtualButtonB
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_X)] = constants.VirtualButtonX
		m.Controller[uint8(sdl.CONTROLLER_BUTTON_Y)] = constants.VirtualButtonY
	}
	return m
}

// inputMappingFile is the TOML form of an InputMapping override:
//
//	[keyboard]
//	Return = "A"
//	Escape = "B"
//
//	[controller]
//	a = "A"
//	start = "Menu"
//
// Keyboard keys use SDL key names, controller keys use SDL controller button
// names.
type inputMappingFile struct {
	Keyboard   map[string]string `toml:"keyboard"`
	Controller map[string]string `toml:"controller"`
}

// ParseInputMapping applies a TOML override on top of base.
func ParseInputMapping(base InputMapping, data []byte) (InputMapping, error) {
	var file inputMappingFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return base, fmt.Errorf("failed to parse input mapping: %w", err)
	}

	out := InputMapping{
		Keyboard:   make(map[sdl.Keycode]constants.VirtualButton, len(base.Keyboard)),
		Controller: make(map[uint8]constants.VirtualButton, len(base.Controller)),
	}
	for k, v := range base.Keyboard {
		out.Keyboard[k] = v
	}
	for k, v := range base.Controller {
		out.Controller[k] = v
	}

	for name, button := range file.Keyboard {
		vb, ok := constants.ParseVirtualButton(button)
		if !ok {
			return base, fmt.Errorf("keyboard %q: unknown button %q", name, button)
		}
		key := sdl.GetKeyFromName(name)
		if key == sdl.K_UNKNOWN {
			return base, fmt.Errorf("keyboard %q: unknown key", name)
		}
		out.Keyboard[key] = vb
	}

	for name, button := range file.Controller {
		vb, ok := constants.ParseVirtualButton(button)
		if !ok {
			return base, fmt.Errorf("controller %q: unknown button %q", name, button)
		}
		b := sdl.GameControllerGetButtonFromString(strings.ToLower(name))
		if b == sdl.CONTROLLER_BUTTON_INVALID {
			return base, fmt.Errorf("controller %q: unknown button name", name)
		}
		out.Controller[uint8(b)] = vb
	}

	return out, nil
}

// InputProcessor turns SDL events into InputEvents.
type InputProcessor struct {
	mapping     InputMapping
	controllers []*sdl.GameController
}

var inputProcessor *InputProcessor

func NewInputProcessor(mapping InputMapping) *InputProcessor {
	return &InputProcessor{mapping: mapping}
}

// GetInputProcessor returns the processor created by Init.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// ProcessSDLEvent returns nil for events that are not bound to a button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		vb, ok := p.mapping.Keyboard[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: vb, Pressed: e.State == sdl.PRESSED, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		vb, ok := p.mapping.Controller[e.Button]
		if !ok {
			return nil
		}
		return &InputEvent{Button: vb, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			p.openController(int(e.Which))
		}
	}
	return nil
}

func (p *InputProcessor) openAllControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openController(i)
	}
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
	p.controllers = append(p.controllers, controller)
}

func (p *InputProcessor) closeControllers() {
	for _, c := range p.controllers {
		c.Close()
	}
	p.controllers = nil
}
