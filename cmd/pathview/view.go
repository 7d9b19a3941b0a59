package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/curvekit/pathfollow"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	hudRows      = 2
	curveSamples = 240
	samplesStep  = 4
)

var (
	styleCurve    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleIdle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePoint    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHandle   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleFollower = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type viewer struct {
	screen tcell.Screen
	width  int
	height int

	cfg   Config
	scene *Scene
	cam   Camera
	log   *slog.Logger
}

func newViewer(cfg Config, log *slog.Logger) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	v := &viewer{
		screen: screen,
		cfg:    cfg,
		scene:  NewScene(cfg),
		cam:    Camera{Distance: cfg.Camera.Distance, Height: cfg.Camera.Height},
		log:    log,
	}
	v.width, v.height = screen.Size()
	v.scene.Start()
	log.Info("viewer started", "width", v.width, "height", v.height, "path", v.scene.ActivePath().name)
	return v, nil
}

func (v *viewer) close() {
	v.screen.Fini()
}

func (v *viewer) run() {
	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(v.screen.PollEvent, eventChan, quit)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			wasMoving := v.scene.Lead().IsMoving()
			v.scene.Advance(dt)
			if wasMoving && !v.scene.Lead().IsMoving() {
				v.log.Info("follower reached the end", "path", v.scene.ActivePath().name)
			}
			v.cam.Angle += v.cfg.Camera.Spin * dt
			v.draw()
		}
	}
}

// pumpEvents forwards polled events to out until poll returns nil or quit is
// closed.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			v.scene.Next()
			v.log.Info("switch path", "path", v.scene.ActivePath().name, "progress", v.scene.Lead().Progress())
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	s := v.scene
	switch r {
	case 'q':
		return false
	case ' ':
		if s.Lead().IsMoving() {
			s.Stop()
		} else {
			s.Start()
		}
		v.log.Debug("toggle motion", "moving", s.Lead().IsMoving())
	case 'r':
		for _, f := range s.Followers {
			f.Reverse = !f.Reverse
		}
	case 'l':
		for _, f := range s.Followers {
			f.Loop = !f.Loop
		}
	case 'u':
		for _, f := range s.Followers {
			f.Uniform = !f.Uniform
		}
	case '+', '=':
		n := s.SetSamples(s.ActivePath().path.SamplesPerSegment() + samplesStep)
		v.log.Debug("samples per segment", "n", n)
	case '-':
		n := s.SetSamples(s.ActivePath().path.SamplesPerSegment() - samplesStep)
		v.log.Debug("samples per segment", "n", n)
	case 'a':
		pt := s.ActivePath().path.AddPoint()
		v.log.Info("add point", "path", s.ActivePath().name, "point", pt)
	case 'x':
		if !s.ActivePath().path.RemoveLast() {
			v.log.Warn("cannot remove point", "path", s.ActivePath().name, "points", s.ActivePath().path.Len())
		}
	}
	return true
}

func (v *viewer) set(x, y int, r rune, style tcell.Style) {
	if y < hudRows {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *viewer) plot(p mgl64.Vec3, r rune, style tcell.Style) {
	if cx, cy, ok := v.cam.Project(p, v.width, v.height); ok {
		v.set(cx, cy, r, style)
	}
}

func (v *viewer) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	s := v.scene

	for i, np := range s.Paths {
		style := styleIdle
		if i == s.Active {
			style = styleCurve
		}
		for j := range curveSamples + 1 {
			p := np.path.EvaluateUniform(float64(j) / curveSamples)
			v.plot(p, '·', style)
		}
	}

	active := s.ActivePath().path
	for _, seg := range active.Segments() {
		if seg.Kind == pathfollow.BezierSegment {
			v.plot(seg.P1, '+', styleHandle)
			v.plot(seg.P2, '+', styleHandle)
		}
	}
	for i := range active.Len() {
		p := active.EvaluateAtParameter(float64(i) / float64(max(active.SegmentCount(), 1)))
		v.plot(p, 'o', stylePoint)
	}

	for i, tr := range s.Trails {
		for _, p := range tr.Points() {
			v.plot(p, '•', styleCurve)
		}
		p := s.Followers[i].CurrentPosition()
		v.plot(p, '@', styleFollower)
	}

	v.drawHUD()
	v.screen.Show()
}

func (v *viewer) drawHUD() {
	s := v.scene
	f := s.Lead()
	p := s.ActivePath().path
	status := fmt.Sprintf("%-6s %-7s progress %.3f (done %.2f)  length %.3f (exact %.3f)  samples %d",
		s.ActivePath().name, f.State(), f.Progress(), f.Completion(), p.TotalLength(), p.Arclen(1e-6), p.SamplesPerSegment())
	flags := fmt.Sprintf("loop %t  reverse %t  uniform %t   [space] start/stop [tab] path [r] [l] [u] [+/-] samples [a/x] points [q] quit",
		f.Loop, f.Reverse, f.Uniform)
	v.drawText(0, 0, styleHUD, status)
	v.drawText(0, 1, styleHUD, flags)
}
