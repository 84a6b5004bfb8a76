// An interactive CPU ray tracer rendered straight into the terminal.
//
// Controls:
//
//	W/A/S/D     - Move the camera along its basis
//	Mouse drag  - Rotate the camera (yaw/pitch) while LMB is held
//	X           - Save a screenshot (RayTracing_Buffer.bmp)
//	F2          - Cycle shadow mode (hard/soft/none)
//	F3          - Cycle lighting mode
//	F4          - Toggle global illumination
//	F5          - Toggle soft shadows
//	Up/Down     - Cycle scenes
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/arendv/go-interactive-raytracer/pkg/config"
	"github.com/arendv/go-interactive-raytracer/pkg/display"
	"github.com/arendv/go-interactive-raytracer/pkg/renderer"
	"github.com/arendv/go-interactive-raytracer/pkg/scene"
)

var (
	configPath = flag.String("config", "raytracer.yaml", "Path to YAML run configuration")
	sceneFlag  = flag.String("scene", "", "Start scene (overrides config)")
	workers    = flag.Int("workers", 0, "Number of pixel workers (0 = CPU count)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Interactive Ray Tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raytracer [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/A/S/D    - Move camera\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag - Rotate camera\n")
		fmt.Fprintf(os.Stderr, "  X          - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  F2/F3      - Cycle shadow / lighting mode\n")
		fmt.Fprintf(os.Stderr, "  F4/F5      - Toggle GI / soft shadows\n")
		fmt.Fprintf(os.Stderr, "  Up/Down    - Cycle scenes\n")
		fmt.Fprintf(os.Stderr, "  Esc        - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rotationAxis smooths one camera rotation axis: mouse drags add velocity,
// a critically damped spring takes it back to rest.
type rotationAxis struct {
	velocity float64
	accel    float64
	spring   harmonica.Spring
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *rotationAxis) update() float64 {
	applied := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return applied
}

// sceneHost owns the loaded scene and the factory list for cycling.
type sceneHost struct {
	factories []scene.Factory
	index     int
	scene     *scene.Scene
	loadedAt  time.Time
	logger    *log.Logger
}

// load instantiates the factory at index; on failure it keeps the current
// scene and reports the error.
func (h *sceneHost) load(index int) error {
	factory := h.factories[index]
	s, err := factory.Create()
	if err != nil {
		return fmt.Errorf("load scene %q: %w", factory.Name, err)
	}
	h.index = index
	h.scene = s
	h.loadedAt = time.Now()
	h.logger.Printf("scene loaded: %s", s.Name)
	return nil
}

func (h *sceneHost) cycle(step int) {
	next := (h.index + step + len(h.factories)) % len(h.factories)
	if err := h.load(next); err != nil {
		h.logger.Printf("%v", err)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	logger := newLogger(cfg.LogFile)

	term := uv.DefaultTerminal()
	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	// any-event mouse tracking + SGR extended coordinates
	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	fbWidth, fbHeight := display.FramebufferSizeFor(cols, rows)
	fb := display.NewFramebuffer(fbWidth, fbHeight)

	rend := renderer.New(fb, cfg.Workers, logger)
	rend.SetLightingMode(parseLightingMode(cfg.Lighting))
	rend.SetShadowMode(parseShadowMode(cfg.Shadows))
	rend.SetGlobalIllumination(cfg.GlobalIllumination)

	host := &sceneHost{factories: scene.Factories(cfg.AssetDir), logger: logger}
	if err := host.load(startIndex(host.factories, cfg.Scene)); err != nil {
		logger.Printf("%v", err)
		// fall forward to the first scene that does load
		loaded := false
		for i := range host.factories {
			if err := host.load(i); err == nil {
				loaded = true
				break
			}
		}
		if !loaded {
			cleanup()
			return fmt.Errorf("no scene could be loaded")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state shared with the event goroutine through the command
	// queue; the frame loop drains it between frames so the scene and
	// renderer are never mutated while pixels are in flight.
	commands := make(chan func(), 64)
	held := struct{ w, a, s, d bool }{}
	var mouseDown bool
	var lastMouseX, lastMouseY int
	var takeScreenshot bool

	yawAxis := newRotationAxis(cfg.TargetFPS)
	pitchAxis := newRotationAxis(cfg.TargetFPS)

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				w, h := ev.Width, ev.Height
				commands <- func() {
					cols, rows = w, h
					term.Erase()
					term.Resize(cols, rows)
					fbWidth, fbHeight = display.FramebufferSizeFor(cols, rows)
					fb = display.NewFramebuffer(fbWidth, fbHeight)
					rend = renderer.New(fb, cfg.Workers, logger)
				}

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("w"):
					commands <- func() { held.w = true }
				case ev.MatchString("a"):
					commands <- func() { held.a = true }
				case ev.MatchString("s"):
					commands <- func() { held.s = true }
				case ev.MatchString("d"):
					commands <- func() { held.d = true }
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"):
					commands <- func() { held.w = false }
				case ev.MatchString("a"):
					commands <- func() { held.a = false }
				case ev.MatchString("s"):
					commands <- func() { held.s = false }
				case ev.MatchString("d"):
					commands <- func() { held.d = false }
				case ev.MatchString("x"):
					commands <- func() { takeScreenshot = true }
				case ev.MatchString("f2"):
					commands <- func() { rend.ToggleShadows() }
				case ev.MatchString("f3"):
					commands <- func() { rend.ToggleLightingMode() }
				case ev.MatchString("f4"):
					commands <- func() { rend.ToggleGlobalIllumination() }
				case ev.MatchString("f5"):
					commands <- func() { rend.ToggleSoftShadows() }
				case ev.MatchString("up"):
					commands <- func() { host.cycle(1) }
				case ev.MatchString("down"):
					commands <- func() { host.cycle(-1) }
				}

			case uv.MouseClickEvent:
				x, y := ev.X, ev.Y
				commands <- func() {
					mouseDown = true
					lastMouseX, lastMouseY = x, y
				}

			case uv.MouseReleaseEvent:
				commands <- func() { mouseDown = false }

			case uv.MouseMotionEvent:
				x, y := ev.X, ev.Y
				commands <- func() {
					if mouseDown {
						dx := x - lastMouseX
						dy := y - lastMouseY
						yawAxis.velocity += float64(dx) * 0.004
						pitchAxis.velocity += float64(dy) * 0.004
						lastMouseX, lastMouseY = x, y
					}
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(cfg.TargetFPS)
	lastFrame := time.Now()
	var fps float64

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		// drain pending input before touching any shared state
	drain:
		for {
			select {
			case cmd := <-commands:
				cmd()
			default:
				break drain
			}
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}
		if dt > 0 {
			fps = 1 / dt
		}

		// single-threaded update phase: camera pose, mesh transforms, BVHs
		cam := &host.scene.Camera
		speed := float32(dt) * scene.CameraMovementSpeed
		if held.w {
			cam.Move(0, 0, speed)
		}
		if held.s {
			cam.Move(0, 0, -speed)
		}
		if held.a {
			cam.Move(-speed, 0, 0)
		}
		if held.d {
			cam.Move(speed, 0, 0)
		}

		dYaw := yawAxis.update()
		dPitch := pitchAxis.update()
		if dYaw != 0 || dPitch != 0 {
			cam.Rotate(float32(dYaw)*scene.CameraRotationSpeed, float32(dPitch)*scene.CameraRotationSpeed)
		}

		host.scene.Update(float32(time.Since(host.loadedAt).Seconds()))

		// parallel render phase, then present
		rend.Render(host.scene)
		fb.Draw(term, uv.Rect(0, 0, cols, rows))
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		drawPanel(display.PanelInfo{
			SceneName:    host.scene.Name,
			FPS:          fps,
			LightingMode: rend.GetLightingMode().String(),
			ShadowMode:   rend.GetShadowMode().String(),
			GI:           rend.GlobalIllumination(),
		})

		if takeScreenshot {
			takeScreenshot = false
			if err := fb.SaveBMP("RayTracing_Buffer.bmp"); err != nil {
				logger.Printf("screenshot failed: %v", err)
			} else {
				logger.Printf("screenshot saved")
			}
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// drawPanel overlays the status panel in the top-left corner
func drawPanel(info display.PanelInfo) {
	for i, line := range strings.Split(display.RenderPanel(info), "\n") {
		fmt.Printf("\x1b[%d;1H%s", i+1, line)
	}
}

func newLogger(path string) *log.Logger {
	if path == "" {
		return log.New(io.Discard, "", 0)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(file, "", log.LstdFlags)
}

func startIndex(factories []scene.Factory, name string) int {
	for i, f := range factories {
		if f.Name == name {
			return i
		}
	}
	return 0
}

func parseLightingMode(name string) renderer.LightingMode {
	switch name {
	case "observed-area":
		return renderer.ObservedArea
	case "radiance":
		return renderer.Radiance
	case "brdf":
		return renderer.BRDF
	default:
		return renderer.Combined
	}
}

func parseShadowMode(name string) renderer.ShadowMode {
	switch name {
	case "soft":
		return renderer.SoftShadows
	case "none":
		return renderer.NoShadows
	default:
		return renderer.HardShadows
	}
}
