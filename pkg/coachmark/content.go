package coachmark

import (
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/internal"
	"github.com/BrandonKowalski/coachmark/pkg/coachmark/sequence"
)

type blockKind int

const (
	blockTitle blockKind = iota
	blockImage
	blockBody
)

type contentBlock struct {
	kind blockKind
	text string // text, or image path for blockImage
}

// contentCollector records what a step renders so the tip box can be sized
// before anything is drawn.
type contentCollector struct {
	blocks []contentBlock
}

var _ sequence.Renderer = (*contentCollector)(nil)

func collectContent(step sequence.Step) []contentBlock {
	c := &contentCollector{}
	step.Render(c)
	return c.blocks
}

func (c *contentCollector) Title(text string) {
	c.blocks = append(c.blocks, contentBlock{kind: blockTitle, text: text})
}

func (c *contentCollector) Body(text string) {
	c.blocks = append(c.blocks, contentBlock{kind: blockBody, text: text})
}

func (c *contentCollector) Image(path string) {
	c.blocks = append(c.blocks, contentBlock{kind: blockImage, text: path})
}

// textMetrics describes a font to the layout without tying it to SDL.
type textMetrics struct {
	measure    func(string) int32
	lineHeight int32
	fontHeight int32
}

func (m textMetrics) height(lines int) int32 {
	if lines == 0 {
		return 0
	}
	return m.lineHeight*int32(lines-1) + m.fontHeight
}

type laidBlock struct {
	kind   blockKind
	lines  []string
	image  string
	y      int32 // relative to the top of the content area
	height int32
}

// tipLayout is the tip box content stacked top to bottom, followed by the
// controls row.
type tipLayout struct {
	blocks    []laidBlock
	controlsY int32
	height    int32 // content plus controls, without box padding
}

// layoutTip stacks blocks inside width. Blocks are separated by gap and the
// controls row always comes last.
func layoutTip(blocks []contentBlock, width int32, title, body textMetrics, imageHeight func(string) int32, controlsHeight, gap int32) tipLayout {
	var out tipLayout
	y := int32(0)

	for _, b := range blocks {
		lb := laidBlock{kind: b.kind, y: y}
		switch b.kind {
		case blockTitle:
			lb.lines = internal.WrapText(b.text, width, title.measure)
			lb.height = title.height(len(lb.lines))
		case blockBody:
			lb.lines = internal.WrapText(b.text, width, body.measure)
			lb.height = body.height(len(lb.lines))
		case blockImage:
			lb.image = b.text
			lb.height = imageHeight(b.text)
		}
		if lb.height <= 0 {
			continue
		}
		out.blocks = append(out.blocks, lb)
		y += lb.height + gap
	}

	out.controlsY = y
	out.height = y + controlsHeight
	return out
}
