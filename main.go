package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shanghaoqi/glyphicon/internal/app"
	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/render"
	"github.com/shanghaoqi/glyphicon/internal/state"
)

const envStdioLog = "GLYPHICON_STDIO_LOG"

func main() {
	defaults, err := export.DefaultOptionsFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.Dir, "output directory; also configurable via "+export.EnvOutDir)
	stem := flag.String("stem", defaults.Stem, "base file name; also configurable via "+export.EnvStem)
	sizes := flag.String("sizes", joinSizes(defaults.Sizes), "comma separated PNG sizes; also configurable via "+export.EnvSizes)
	previewPath := flag.String("preview", "", "also write a contact sheet of every size to this PNG file")
	fbDevice := flag.String("fb", "", "show the contact sheet on this framebuffer device (e.g. /dev/fb0)")
	debug := flag.Bool("debug", false, "enable debug logging to ./glyphicon-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./glyphicon-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	opts := defaults
	opts.Dir = *outDir
	opts.Stem = *stem
	if opts.Sizes, err = export.ParseSizes(*sizes); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	var display render.Display = render.NoopDisplay{}
	if *fbDevice != "" {
		fbDisplay := render.NewFBDisplay(*fbDevice)
		fbDisplay.Logger = logger
		display = fbDisplay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	a := app.New(store, export.NewExporter(opts, store), display)
	a.Logger = logger
	a.PreviewPath = *previewPath

	if err := a.Run(ctx); err != nil {
		fmt.Println("error:", err)
		stop()
		os.Exit(1)
	}
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = fmt.Sprint(size)
	}
	return strings.Join(parts, ",")
}
