package sequence_test

import (
	"fmt"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/config"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
)

// Example walks a two step tour. The host measures each anchor and registers
// its region; the controller answers with a new frame every time.
func Example() {
	c := sequence.New(sequence.Options{
		Viewport: geometry.XYWH(0, 0, 800, 600),
		OnFinish: func() { fmt.Println("finished") },
		OnSkip:   func() { fmt.Println("skipped") },
	})

	c.Subscribe(func(f sequence.Frame) {
		if !f.Drawable() {
			return
		}
		fmt.Printf("%s: %d/%d arrow %s box %s\n",
			f.Step.ID(), f.Index+1, f.Count, f.Layout.Direction, f.Layout.Box)
	})

	steps := []sequence.Step{
		sequence.TextStep{Key: "menu", Title: "Menu", Body: "Open the menu here."},
		sequence.TextStep{Key: "play", Body: "Start a game."},
	}
	if err := c.Start(steps, config.Default()); err != nil {
		fmt.Println(err)
		return
	}

	c.RegisterRegion("menu", geometry.XYWH(100, 50, 80, 20))
	c.RegisterRegion("play", geometry.XYWH(100, 500, 80, 20))

	c.Advance()
	c.Advance()

	fmt.Println(c.Phase(), c.Outcome())

	// Output:
	// menu: 1/2 arrow bottom box (x:16 y:84 w:320 h:120)
	// play: 2/2 arrow top box (x:16 y:366 w:320 h:120)
	// finished
	// finished completed
}

// Example_skip shows that a dismissed tour ignores the duplicate events a UI
// usually sends while it closes.
func Example_skip() {
	c := sequence.New(sequence.Options{
		OnFinish: func() { fmt.Println("finished") },
		OnSkip:   func() { fmt.Println("skipped") },
	})

	_ = c.Start([]sequence.Step{sequence.TextStep{Key: "a"}, sequence.TextStep{Key: "b"}}, config.Default())

	c.Skip()
	c.Skip()
	c.Advance()

	fmt.Println(c.Phase(), c.Outcome())

	// Output:
	// skipped
	// finished skipped
}

func ExampleErase() {
	type shortcut struct {
		Keys   string
		Action string
	}

	step := sequence.Erase("save", shortcut{Keys: "Ctrl+S", Action: "Save"}, func(s shortcut, r sequence.Renderer) {
		r.Title(s.Action)
		r.Body("Press " + s.Keys)
	})

	fmt.Println(step.ID(), step.Content().(shortcut).Keys)

	// Output:
	// save Ctrl+S
}
