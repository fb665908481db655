package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the device node the power key is read from.
// A short press dismisses the overlay; holding the key past ShortPressMax runs
// ShutdownCommand when one is set.
type PowerButtonConfig struct {
	ButtonCode      uint16
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	ShutdownCommand string
}

// PowerButton watches an evdev device on its own goroutine. The UI loop polls
// Pressed once per frame.
type PowerButton struct {
	cfg     PowerButtonConfig
	device  *evdev.InputDevice
	pressed *atomic.Bool
	closed  *atomic.Bool
	wg      sync.WaitGroup
}

func newPowerButton(cfg PowerButtonConfig) *PowerButton {
	return &PowerButton{
		cfg:     cfg,
		pressed: atomic.NewBool(false),
		closed:  atomic.NewBool(false),
	}
}

// StartPowerButton opens the device and begins watching it.
func StartPowerButton(cfg PowerButtonConfig) (*PowerButton, error) {
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	pb := newPowerButton(cfg)
	pb.device = device
	pb.wg.Add(1)
	go pb.run()
	return pb, nil
}

// Pressed reports whether a short press happened since the last call.
func (pb *PowerButton) Pressed() bool {
	if pb == nil {
		return false
	}
	return pb.pressed.Swap(false)
}

// Close stops the watcher and waits for it to exit.
func (pb *PowerButton) Close() {
	if pb == nil || !pb.closed.CompareAndSwap(false, true) {
		return
	}
	if pb.device != nil {
		pb.device.Close()
	}
	pb.wg.Wait()
}

func (pb *PowerButton) run() {
	defer pb.wg.Done()

	var pressedAt time.Time
	var lastRelease time.Time

	for {
		event, err := pb.device.ReadOne()
		if err != nil {
			if !pb.closed.Load() {
				GetInternalLogger().Error("Power button watcher stopped", "device", pb.cfg.DevicePath, "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != pb.cfg.ButtonCode {
			continue
		}

		now := time.Now()
		switch event.Value {
		case 1:
			pressedAt = now
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			held := now.Sub(pressedAt)
			pressedAt = time.Time{}
			pb.handleRelease(held, now.Sub(lastRelease))
			lastRelease = now
		}
	}
}

func (pb *PowerButton) handleRelease(held, sinceLast time.Duration) {
	if sinceLast < pb.cfg.CoolDownTime {
		return
	}

	if held <= pb.cfg.ShortPressMax {
		GetInternalLogger().Debug("Power button short press")
		pb.pressed.Store(true)
		return
	}

	if pb.cfg.ShutdownCommand == "" {
		return
	}
	GetInternalLogger().Info("Power button long press, shutting down", "command", pb.cfg.ShutdownCommand)
	if err := exec.Command(pb.cfg.ShutdownCommand).Run(); err != nil {
		GetInternalLogger().Error("Shutdown command failed", "error", err)
	}
}
