package vgcore

// nvgCommands are the verb tags recorded in the command buffer (C2).
type nvgCommands int

const (
	nvgMOVETO nvgCommands = iota
	nvgLINETO
	nvgBEZIERTO
	nvgCLOSE
	nvgWINDING
)

// nvgPointFlags are per-point flags set while walking a flattened subpath (C4).
type nvgPointFlags int

const (
	nvgPtCORNER     nvgPointFlags = 1 << 0
	nvgPtLEFT       nvgPointFlags = 1 << 1
	nvgPtBEVEL      nvgPointFlags = 1 << 2
	nvgPtINNERBEVEL nvgPointFlags = 1 << 3
)

const (
	nvgMaxStates         = 32
	nvgMaxFontImages     = 4
	nvgInitFontImageSize = 512
	nvgMaxFontImageSize  = 2048

	// fontInvalid is the sentinel font handle meaning "no font selected".
	fontInvalid = -1

	nvgInitCommandsSize = 256
	nvgInitPointsSize   = 128
	nvgInitPathsSize    = 16
	nvgInitVertsSize    = 256

	// Kappa90 is the length proportional to radius of a cubic bezier
	// handle used to approximate a 90 degree arc.
	Kappa90 = 0.5522847493
)

// Winding specifies the direction in which a subpath is wound. CCW paths
// are solid, CW paths are holes when combined with other subpaths.
type Winding int

const (
	CCW Winding = iota + 1 // Winding for solid shapes
	CW                     // Winding for holes
)

const (
	Solid Winding = CCW
	Hole  Winding = CW
)

// LineCap enumerates cap styles (Butt, Round, Square) and doubles as the
// join style enumeration (Miter, Round, Bevel) — both are small integer
// enums over the same underlying concept of "how does geometry terminate".
type LineCap int

const (
	BUTT LineCap = iota
	ROUND
	SQUARE
	BEVEL
	MITER
)

// Align is a bitmask: horizontal alignment OR-combined with vertical.
type Align int

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight

	AlignTop
	AlignMiddle
	AlignBottom
	AlignBaseline
)

// Solidity describes whether a winding is treated as filled or a hole; an
// alias kept for readability at call sites that read "Solid"/"Hole"
// rather than CCW/CW.
type Solidity = Winding

// ImageFlags control texture creation/wrapping behavior.
type ImageFlags int

const (
	ImageGenerateMipmaps ImageFlags = 1 << iota
	ImageRepeatX
	ImageRepeatY
	ImageFlipY
	ImagePremultiplied
)

// CreateFlags configure a Context at construction time.
type CreateFlags int

const (
	AntiAlias CreateFlags = 1 << iota
	StencilStrokes
	Debug
)

// CompositeOperation enumerates the Porter-Duff-ish operations the
// back-end must support; each maps to an (srcFactor, dstFactor) pair
// applied identically to RGB and alpha unless
// GlobalCompositeBlendFuncSeparate is used.
type CompositeOperation int

const (
	SourceOver CompositeOperation = iota
	SourceIn
	SourceOut
	Atop
	DestinationOver
	DestinationIn
	DestinationOut
	DestinationAtop
	Lighter
	Copy
	XOR
)

// BlendFactor enumerates the GL-style blend factors used by
// CompositeOperationState.
type BlendFactor int

const (
	ZERO BlendFactor = iota
	ONE
	SRC_COLOR
	ONE_MINUS_SRC_COLOR
	DST_COLOR
	ONE_MINUS_DST_COLOR
	SRC_ALPHA
	ONE_MINUS_SRC_ALPHA
	DST_ALPHA
	ONE_MINUS_DST_ALPHA
	SRC_ALPHA_SATURATE
)

// CompositeOperationState is the resolved (factor, factor) pair for RGB
// and alpha that a Renderer back-end applies when blending.
type CompositeOperationState struct {
	SrcRGB   BlendFactor
	DstRGB   BlendFactor
	SrcAlpha BlendFactor
	DstAlpha BlendFactor
}

// HitTestFlags select which geometry (fill, stroke, or both) a hit-test
// query should consider.
type HitTestFlags int

const (
	TestFill HitTestFlags = 1 << iota
	TestStroke
)

// TextureKind distinguishes single-channel alpha atlases (glyphs) from
// full RGBA images (user images).
type TextureKind int

const (
	TextureAlpha TextureKind = iota
	TextureRGBA
)
