package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"pptxgen/config"
	"pptxgen/deck"
	"pptxgen/handler"
	"pptxgen/logging"
	"pptxgen/manager"
	"pptxgen/render"
)

var version = "dev"

var log = logging.GetLogger()

func main() {
	fs, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if config.CliArgs.Version {
		fmt.Println(version)
		return
	}

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := cfg.Level()
	if config.CliArgs.Debug {
		level = logrus.DebugLevel
	}
	log = logging.InitLogger(level)
	logging.SetFormat(cfg.LogFormat)

	if useLambda(cfg.Mode) {
		log.Infoln("Starting Lambda handler")
		lambda.Start(handler.Handle)
		return
	}

	if err := serve(cfg); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// useLambda decides the run mode. In auto mode the Lambda runtime is detected from its environment.
func useLambda(mode string) bool {
	switch mode {
	case config.ModeLambda:
		return true
	case config.ModeHTTP:
		return false
	default:
		return os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
	}
}

func newRouter(h http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	// Every other path and method goes to the generator, like the function URL does.
	r.PathPrefix("/").Handler(h)
	return r
}

// selfCheck renders the deck once and reads it back before the server accepts traffic.
func selfCheck() error {
	d := deck.IndustrialRevolution()
	pkg, err := render.Render(d)
	if err != nil {
		return fmt.Errorf("self-check render: %w", err)
	}
	outline, err := render.ReadOutline(pkg)
	if err != nil {
		return fmt.Errorf("self-check read: %w", err)
	}
	if len(outline.Slides) != d.SlideCount() {
		return fmt.Errorf("self-check: rendered %d slides, want %d", len(outline.Slides), d.SlideCount())
	}
	titles := d.Titles()
	for i, want := range titles {
		if got := outline.Slides[i].Title(); got != want {
			return fmt.Errorf("self-check: slide %d title %q, want %q", i+1, got, want)
		}
	}
	log.Debugf("Self-check rendered %d slides (%d bytes): %q", len(outline.Slides), len(pkg), titles)
	return nil
}

func serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := selfCheck(); err != nil {
		return err
	}

	cm := manager.NewConcurrencyManager(cfg.Render.Decks, cfg.Render.DefaultSlots, cfg.Render.AcquireTimeout)
	defer cm.Shutdown()

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           newRouter(handler.NewHTTPHandler(handler.New(), cm, limiter)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting server on %s", cfg.ListenAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infoln("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
