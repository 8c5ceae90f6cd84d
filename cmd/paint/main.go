// Command paint is a layered raster painting program.
//
// Without -script it opens a window. With -script it runs the commands in
// the named file against a headless session, one command per line:
//
//	color red
//	pointer-down 10 10
//	pointer-move 90 10
//	pointer-up 90 10
//	save out.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/config"
	"github.com/gogpu/paint/internal/ui"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML settings file")
		width   = flag.Int("width", 0, "canvas width (overrides config)")
		height  = flag.Int("height", 0, "canvas height (overrides config)")
		debug   = flag.Bool("debug", false, "log debug output to stderr")
		open    = flag.String("open", "", "image file to open at start")
		script  = flag.String("script", "", "run commands from file without a window")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Canvas.Width = *width
	}
	if *height > 0 {
		cfg.Canvas.Height = *height
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	palette, _ := cfg.Colors()

	s, err := paint.NewSession(opts...)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	if err := s.Load(*open); err != nil {
		log.Fatalf("Failed to open %s: %v", *open, err)
	}

	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		err = runScript(s, f)
		_ = f.Close()
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	ui.Run(s, palette)
}

// runScript executes one command per line. Blank lines and lines starting
// with '#' are skipped. The first failing command stops the script.
func runScript(s *paint.Session, r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := s.Dispatch(fields[0], fields[1:]...); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}
