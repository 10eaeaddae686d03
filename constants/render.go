package constants

// Canvas & frame pacing
const (
	// CanvasWidth and CanvasHeight are the fixed cell dimensions of the
	// rendered view; the canvas does not follow terminal resizes
	CanvasWidth  = 160
	CanvasHeight = 80

	// TargetFPS is the default frame rate of the render loop
	TargetFPS = 60
)

// Camera
const (
	FocalLength    = 100.0
	CameraDistance = 10.0
)

// IntensityRamp orders glyphs from visually sparsest to densest.
// Edge intensity in [0,1] maps linearly onto it.
const IntensityRamp = " .,:;-=+*#%@"
