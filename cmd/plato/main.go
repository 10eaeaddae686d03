package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spendupee/plato/audio"
	"github.com/spendupee/plato/constants"
	"github.com/spendupee/plato/geometry"
	"github.com/spendupee/plato/render"
	"github.com/spendupee/plato/scene"
	"github.com/spendupee/plato/vmath"
)

var (
	fpsFlag   = flag.Int("fps", constants.TargetFPS, "Target frames per second")
	shadeFlag = flag.Bool("shade", false, "Draw glyphs with grayscale foreground shading")
	soundFlag = flag.Bool("sound", false, "Chime once per completed orbit revolution")
)

func main() {
	flag.Parse()
	if *fpsFlag <= 0 {
		fmt.Fprintf(os.Stderr, "invalid fps: %d\n", *fpsFlag)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Restore the terminal on both normal exit and crash; a panic left in
	// raw mode makes the stack trace unreadable
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "plato crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	var chime *audio.Chime
	if *soundFlag {
		c, err := audio.NewChime()
		if err != nil {
			log.Printf("Audio initialization failed: %v (continuing without sound)", err)
		} else {
			chime = c
			defer chime.Close()
		}
	}

	sc := buildScene()
	cam := render.Camera{
		FocalLength: constants.FocalLength,
		Distance:    constants.CameraDistance,
		Width:       constants.CanvasWidth,
		Height:      constants.CanvasHeight,
	}
	ramp := render.Ramp(constants.IntensityRamp)
	presenter := render.NewPresenter(screen, constants.CanvasWidth, constants.CanvasHeight, ramp, *shadeFlag)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*fpsFlag))
	defer ticker.Stop()

	lastRev := 0
	for {
		select {
		case ev, ok := <-events:
			if !ok || quitRequested(ev) {
				return
			}
		case <-ticker.C:
			buf := presenter.Frame()
			sc.Render(buf, cam, ramp)
			presenter.Present()

			if rev := int(sc.OrbitAngle() / (2 * math.Pi)); rev != lastRev {
				lastRev = rev
				chime.Play()
			}
		}
	}
}

// quitRequested reports whether ev asks to leave the render loop.
// The scene itself takes no input; these keys only end the process cleanly.
func quitRequested(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch {
	case key.Key() == tcell.KeyEscape, key.Key() == tcell.KeyCtrlC:
		return true
	case key.Key() == tcell.KeyRune && key.Rune() == 'q':
		return true
	}
	return false
}

// buildScene assembles the static catalog: the central sphere plus the five
// orbiting solids with their per-solid scale and spin ratio.
func buildScene() *scene.Scene {
	light := vmath.Vec3{X: constants.LightX, Y: constants.LightY, Z: constants.LightZ}
	orbit := &scene.Orbit{
		A:     constants.OrbitRadiusA,
		B:     constants.OrbitRadiusB,
		C:     constants.OrbitRadiusC,
		Speed: constants.OrbitSpeed,
	}

	sc := scene.New(light, orbit, constants.BaseSpinSpeed)
	sc.SetSphere(geometry.Sphere(constants.SphereRadius, constants.SphereLats, constants.SphereLongs))

	meshes := []geometry.Mesh{
		geometry.Tetrahedron(),
		geometry.Cube(),
		geometry.Octahedron(),
		geometry.Dodecahedron(),
		geometry.Icosahedron(),
	}
	for i, m := range meshes {
		sc.AddSolid(scene.NewSolid(m, constants.SolidScales[i], constants.SolidSpinRatios[i]))
	}
	return sc
}
