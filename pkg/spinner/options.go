package spinner

import (
	"strings"
	"time"

	"github.com/elseano/nspin/pkg/style"
)

// DefaultInterval is the time between frames when none is configured.
const DefaultInterval = 80 * time.Millisecond

// Position places the frame glyph relative to the message.
type Position int

const (
	Left Position = iota
	Right
)

// ParsePosition accepts "left" or "right". Anything else is Left.
func ParsePosition(s string) Position {
	if strings.EqualFold(strings.TrimSpace(s), "right") {
		return Right
	}

	return Left
}

func (p Position) String() string {
	if p == Right {
		return "right"
	}

	return "left"
}

type options struct {
	frames   []string
	interval time.Duration
	format   []string
	position Position
	registry *Registry
	style    style.Func
}

type Option func(*options)

// WithFrames sets the animation frames.
func WithFrames(frames ...string) Option {
	return func(o *options) { o.frames = frames }
}

// WithCharSet uses one of the named CharSets. Unknown names are ignored.
func WithCharSet(name string) Option {
	return func(o *options) {
		if frames, err := CharSet(name); err == nil {
			o.frames = frames
		}
	}
}

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithFormat styles the frame glyph, e.g. WithFormat("cyan", "bold").
func WithFormat(styles ...string) Option {
	return func(o *options) { o.format = styles }
}

func WithPosition(p Position) Option {
	return func(o *options) {
		if p != Left && p != Right {
			p = Left
		}
		o.position = p
	}
}

// WithRegistry draws the spinner through r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithStyle replaces the styling function applied to the frame glyph.
func WithStyle(fn style.Func) Option {
	return func(o *options) { o.style = fn }
}
