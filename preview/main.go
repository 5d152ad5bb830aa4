// Command preview serves the glyph at every export size over HTTP without
// writing anything to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shanghaoqi/glyphicon/internal/app"
	"github.com/shanghaoqi/glyphicon/internal/export"
	"github.com/shanghaoqi/glyphicon/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}
	opts, err := export.DefaultOptionsFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	stem := flag.String("stem", opts.Stem, "base file name shown in the UI; also configurable via "+export.EnvStem)
	debug := flag.Bool("debug", false, "log server errors to stderr")
	flag.Parse()

	opts.Stem = *stem
	if err := opts.Validate(); err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Handler = web.NewDefaultMux(opts)
	if *debug {
		server.Logger = app.NewFileLogger(os.Stderr)
	}

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("Glyph preview listening on", server.Addr)
	fmt.Println("Sizes:", opts.Sizes)
	fmt.Println("Open: http://" + displayAddr(server.Addr) + "/")

	<-processCtx.Done()
	_ = server.Stop()
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
