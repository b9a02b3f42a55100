// trigon - Terminal 3D Model Viewer
// View glTF/GLB models in your terminal with software 3D rendering, or
// render a single frame to a PNG/TGA file for headless use.
//
// Controls:
//
//	Mouse drag  - Orbit the model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S/A/D     - Pitch and yaw
//	Q/E         - Roll left/right
//	Space       - Apply random spin impulse
//	R           - Reset orientation
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/kaelwright/trigon/internal/imageio"
	"github.com/kaelwright/trigon/internal/presenter"
	"github.com/kaelwright/trigon/pkg/math3d"
	"github.com/kaelwright/trigon/pkg/models"
	"github.com/kaelwright/trigon/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	bgColor   = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	outPath   = flag.String("out", "", "Render one frame to this file (.png or .tga) and exit, instead of opening a terminal view")
	outW      = flag.Int("w", 640, "Output image width, when -out is set")
	outH      = flag.Int("h", 480, "Output image height, when -out is set")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "trigon - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: trigon [options] <model.glb|model.gltf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit the model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset orientation\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	modelPath := flag.Arg(0)

	var err error
	if *outPath != "" {
		err = runHeadless(modelPath)
	} else {
		err = runInteractive(modelPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadCenteredMesh(path string) (*models.Mesh, error) {
	ext := filepath.Ext(path)
	if ext != ".glb" && ext != ".gltf" {
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}

	mesh, err := models.LoadGLB(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim > 0 {
		scale := 2.0 / maxDim
		transform := math3d.Scale(math3d.V3(scale, scale, scale)).Mul(math3d.Translate(center.Scale(-1)))
		mesh.Transform(transform)
	}
	return mesh, nil
}

func parseBackground() math3d.Vec3 {
	var r, g, b uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &r, &g, &b)
	return math3d.V3(float64(r)/255, float64(g)/255, float64(b)/255)
}

// runHeadless renders one frame of the model, in its default orientation,
// directly to an image file. Used for scripted/CI rendering where no
// terminal is available.
func runHeadless(modelPath string) error {
	mesh, err := loadCenteredMesh(modelPath)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(*outW, *outH)
	fb.Clear(parseBackground())

	camera := render.NewCamera()
	camera.SetAspectRatio(float64(*outW) / float64(*outH))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 100)

	triangles := meshTriangles(mesh)
	bounds := render.NewAABB(mesh.BoundsMin, mesh.BoundsMax)
	camera.FrameAABB(bounds, 1.3)
	frustum := render.ExtractFrustum(camera.ViewProjectionMatrix())
	if frustum.IntersectsFrustum(bounds) {
		render.Render(triangles, math3d.Identity(), camera.ViewMatrix(), camera.ProjectionMatrix(), fb)
	} else {
		fmt.Fprintln(os.Stderr, "warning: model bounding box falls entirely outside the camera frustum")
	}

	if err := imageio.Save(fb, *outPath); err != nil {
		return fmt.Errorf("save %s: %w", *outPath, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d, %d triangles)\n", *outPath, *outW, *outH, len(triangles))
	return nil
}

// runInteractive opens a terminal session and continuously renders the
// model with mouse/keyboard-driven orbit controls.
func runInteractive(modelPath string) error {
	mesh, err := loadCenteredMesh(modelPath)
	if err != nil {
		return err
	}
	triangles := meshTriangles(mesh)
	bounds := render.NewAABB(mesh.BoundsMin, mesh.BoundsMax)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	fb := render.NewFramebuffer(width, height*2)
	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fb.Width) / float64(fb.Height))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 100)

	camera.FrameAABB(bounds, 1.3)
	homeZ := camera.Position.Z
	cameraZ := homeZ

	orbit := newOrbitState(*targetFPS)
	bg := parseBackground()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var inputTorque struct{ pitch, yaw, roll float64 }
	const torqueStrength = 3.0
	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb.Resize(width, height*2)
				camera.SetAspectRatio(float64(fb.Width) / float64(fb.Height))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					orbit.reset()
					cameraZ = homeZ
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					orbit.applyImpulse(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("+", "="):
					cameraZ = math.Max(1, cameraZ-0.5)
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				case ev.MatchString("-", "_"):
					cameraZ = math.Min(20, cameraZ+0.5)
					camera.SetPosition(math3d.V3(0, 0, cameraZ))
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.applyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					cameraZ = math.Max(1, cameraZ-0.5)
				case uv.MouseWheelDown:
					cameraZ = math.Min(20, cameraZ+0.5)
				}
				camera.SetPosition(math3d.V3(0, 0, cameraZ))
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		orbit.applyImpulse(inputTorque.pitch*dt, inputTorque.yaw*dt, inputTorque.roll*dt)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9
		orbit.update()

		model := math3d.RotateX(orbit.Pitch.Position).
			Mul(math3d.RotateY(orbit.Yaw.Position)).
			Mul(math3d.RotateZ(orbit.Roll.Position))

		fb.Clear(bg)
		frustum := render.ExtractFrustum(camera.ViewProjectionMatrix())
		if frustum.IntersectsFrustum(render.TransformAABB(bounds, model)) {
			render.Render(triangles, model, camera.ViewMatrix(), camera.ProjectionMatrix(), fb)
		}
		presenter.DrawAxisGizmo(fb, camera, model)

		presenter.Draw(fb, term.Screen(), uv.Rect(0, 0, width, height))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
