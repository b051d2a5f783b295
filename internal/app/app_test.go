package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopperhq/shopper/internal/config"
	testhelpers "github.com/shopperhq/shopper/internal/test"
	"github.com/shopperhq/shopper/internal/worker"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:         "127.0.0.1:0",
		NotifyPollInterval: 10 * time.Millisecond,
		NotifyBatchSize:    4,
		WorkerPoolSize:     2,
		ShutdownTimeout:    time.Second,
	}
}

func TestNewHTTPServer(t *testing.T) {
	router := gin.New()
	server := newHTTPServer(serverParams{Config: testConfig(), Router: router})

	if server.Addr != "127.0.0.1:0" {
		t.Fatalf("unexpected addr %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatal("expected router as handler")
	}
}

func TestNewNotifier(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if newNotifier(logger) == nil {
		t.Fatal("expected notifier instance")
	}
}

func TestNewNotificationDispatcher(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := newFacade(testhelpers.NewFactoryStub(), testhelpers.StrategyStub{})

	dispatcher := newNotificationDispatcher(dispatcherParams{
		Facade:   facade,
		Notifier: worker.NewLogNotifier(logger),
		Config:   testConfig(),
		Logger:   logger,
	})
	if dispatcher == nil {
		t.Fatal("expected dispatcher instance")
	}
}

func TestRegisterLifecycle(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := newFacade(testhelpers.NewFactoryStub(), testhelpers.StrategyStub{})
	cfg := testConfig()

	dispatcher := worker.NewNotificationDispatcher(
		facade, worker.NewLogNotifier(logger), cfg.NotifyPollInterval, cfg.NotifyBatchSize, cfg.WorkerPoolSize, logger)
	server := &http.Server{Addr: cfg.RunAddress, Handler: gin.New()}

	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: &testhelpers.ShutdownerStub{},
		Logger:     logger,
		Server:     server,
		Worker:     dispatcher,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestRegisterLifecycleShutsDownOnServeError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := newFacade(testhelpers.NewFactoryStub(), testhelpers.StrategyStub{})
	cfg := testConfig()

	dispatcher := worker.NewNotificationDispatcher(
		facade, worker.NewLogNotifier(logger), cfg.NotifyPollInterval, cfg.NotifyBatchSize, cfg.WorkerPoolSize, logger)
	server := &http.Server{Addr: "256.256.256.256:1", Handler: gin.New()}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	recorder := &testhelpers.LifecycleRecorder{}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Worker:     dispatcher,
		Config:     cfg,
	})

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("expected shutdown after listen failure")
	}

	if err := recorder.Hooks[0].OnStop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}
