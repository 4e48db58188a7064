package sequence

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/foobos/promotx/util"
)

// SiteURL is the address typed out by the tagline sequence.
const SiteURL = "foobos.net"

// Sequence timing, in frames. The last breakpoint is the bracket slide at
// frame 105; everything clamps beyond it.
const (
	entranceEnd     = 15
	titleFadeEnd    = 10
	shakeStart      = 15
	shakePeak       = 20
	shakeEnd        = 25
	shakeMax        = 6
	dividerStart    = 25
	dividerEnd      = 45
	typeStart       = 50
	typeEnd         = 85
	cursorStart     = 50
	cursorEnd       = 90
	cursorPeriod    = 8
	bracketStart    = 90
	bracketFadeEnd  = 100
	bracketSlideEnd = 105
	bracketOffset   = 30
)

// SequenceEnd is the frame at which the last property settles.
const SequenceEnd = bracketSlideEnd

// A Tagline is an Animation that renders the foobos.net promo tagline: the
// title slams in, the frame shakes on impact, a divider grows, the site URL
// types out under a blinking cursor and a pair of brackets slides in around
// it. Each Snapshot is a pure function of the frame index, so frames can be
// evaluated in any order.
type Tagline struct {
	title   colorful.Color
	flash   colorful.Color
	url     colorful.Color
	divider colorful.Color
}

// NewTagline creates an instance of a Tagline object.
func NewTagline(palette Palette) *Tagline {
	t := new(Tagline)
	t.title = parseColour(palette.Title, defaultTitleColour)
	t.flash = parseColour(palette.Flash, defaultFlashColour)
	t.url = parseColour(palette.URL, defaultURLColour)
	t.divider = parseColour(palette.Divider, defaultDividerColour)

	return t
}

func parseColour(hex string, fallback string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallback)
	}

	return c
}

// Snapshot computes the visual properties for one frame.
func (t *Tagline) Snapshot(frame int64) *Snapshot {
	f := float64(frame)

	// Title slams in from the left with an overshoot, fading in on the way.
	titleX := util.InterpolateEased(f, 0, entranceEnd, -500, 0, ease.OutBack)
	titleOpacity := util.Interpolate(f, 0, titleFadeEnd, 0, 1)

	// Impact shake ramps up and back down while oscillating both axes. The
	// offsets translate the whole composition, not just the title.
	magnitude := util.InterpolateStops(f,
		[]float64{shakeStart, shakePeak, shakeEnd},
		[]float64{0, shakeMax, 0})
	shakeX := math.Sin(f*2) * magnitude
	shakeY := math.Cos(f*2.5) * magnitude

	// The title flashes with the impact and decays with the shake.
	titleColour := t.title
	if magnitude > 0 {
		titleColour = t.title.BlendHcl(t.flash, magnitude/shakeMax)
	}

	dividerWidth := util.InterpolateEased(f, dividerStart, dividerEnd, 0, 100, ease.OutCubic)

	// Typewriter reveal of the site URL, one floor'd fractional count per
	// frame, guarded against out-of-range slicing.
	chars := util.Interpolate(f, typeStart, typeEnd, 0, float64(len(SiteURL)))
	visible := int(math.Max(0, math.Floor(chars)))
	if visible > len(SiteURL) {
		visible = len(SiteURL)
	}

	cursor := frame >= cursorStart && frame <= cursorEnd && frame%cursorPeriod < cursorPeriod/2

	bracketAlpha := util.Interpolate(f, bracketStart, bracketFadeEnd, 0, 1)
	bracketX := util.InterpolateEased(f, bracketStart, bracketSlideEnd, bracketOffset, 0, ease.OutCubic)

	return &Snapshot{
		TitleOffsetX:   titleX,
		TitleOpacity:   titleOpacity,
		TitleColour:    titleColour.Clamped().Hex(),
		ShakeX:         shakeX,
		ShakeY:         shakeY,
		DividerWidth:   dividerWidth,
		DividerColour:  t.divider.Hex(),
		URLText:        SiteURL[:visible],
		URLColour:      t.url.Hex(),
		CursorVisible:  cursor,
		BracketOpacity: bracketAlpha,
		BracketOffset:  bracketX,
	}
}
