package sequence

// Renderer receives a step's content when the host draws the tip box. The SDL
// host lays the calls out top to bottom; other hosts may ignore what they
// cannot show.
type Renderer interface {
	Title(text string)
	Body(text string)
	Image(path string)
}

// Step is one stop in a walkthrough. ID must be unique within a sequence; it
// is the key regions are registered under.
type Step interface {
	ID() string
	Render(r Renderer)
}

// AnyStep stores a step of any content type behind the Step interface. The
// content is carried untouched and handed back to its typed render function.
type AnyStep struct {
	id      string
	content any
	render  func(Renderer)
}

// Erase wraps typed content and its renderer into an AnyStep.
func Erase[C any](id string, content C, render func(C, Renderer)) AnyStep {
	return AnyStep{
		id:      id,
		content: content,
		render: func(r Renderer) {
			if render != nil {
				render(content, r)
			}
		},
	}
}

func (s AnyStep) ID() string {
	return s.id
}

// Content returns the wrapped payload.
func (s AnyStep) Content() any {
	return s.content
}

func (s AnyStep) Render(r Renderer) {
	if s.render != nil {
		s.render(r)
	}
}

// TextStep is the built-in step with a plain-text payload.
type TextStep struct {
	Key   string
	Title string
	Body  string
	Image string // optional image path shown above the body
}

func (s TextStep) ID() string {
	return s.Key
}

func (s TextStep) Render(r Renderer) {
	if s.Title != "" {
		r.Title(s.Title)
	}
	if s.Image != "" {
		r.Image(s.Image)
	}
	if s.Body != "" {
		r.Body(s.Body)
	}
}
