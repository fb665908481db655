package sequence

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/placement"
)

// Frame is everything a host needs to draw the overlay for one moment of a
// walkthrough.
//
// Visible is false when no step is active. Positioned is false while the
// active step's anchor has not been measured yet; the host shows nothing for
// it until a region arrives.
type Frame struct {
	Visible    bool
	Positioned bool
	Index      int
	Count      int
	Step       Step
	Target     geometry.Rect
	Layout     placement.Result
	Config     config.Configuration
}

// Drawable reports whether the host should draw a tip box.
func (f Frame) Drawable() bool {
	return f.Visible && f.Positioned
}

// IsFirst reports whether the frame shows the first step.
func (f Frame) IsFirst() bool {
	return f.Index == 0
}

// IsLast reports whether the frame shows the last step.
func (f Frame) IsLast() bool {
	return f.Count > 0 && f.Index == f.Count-1
}

// ShowBack reports whether a back control belongs on this frame.
func (f Frame) ShowBack() bool {
	return f.Config.ShowBackButton && !f.IsFirst()
}

// NextLabel returns the label for the forward control, which reads as the
// finish label on the last step.
func (f Frame) NextLabel(labels config.Labels) string {
	if f.IsLast() {
		return labels.Finish
	}
	return labels.Next
}
