package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopperhq/shopper/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the dispatcher.
type StorefrontFacade interface {
	PendingNotifications(ctx context.Context, limit int) ([]model.Notification, error)
}

// Notifier delivers one claimed notification to its channel.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification) error
}

// LogNotifier writes notifications to the structured log. It stands in until a
// push or e-mail channel is wired.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notification model.Notification) error {
	n.logger.Info("notification delivered",
		slog.Int64("user_id", notification.UserID),
		slog.Int64("order_id", notification.OrderID),
		slog.String("type", string(notification.Type)),
		slog.String("title", notification.Title),
	)
	return nil
}

// NotificationDispatcher polls for undelivered notifications and fans them out
// to a worker pool. Rows are claimed in storage, so a notification is handled
// by at most one worker even with several dispatcher instances running.
type NotificationDispatcher struct {
	facade       StorefrontFacade
	notifier     Notifier
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(facade StorefrontFacade, notifier Notifier, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &NotificationDispatcher{
		facade:       facade,
		notifier:     notifier,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *NotificationDispatcher) fetchAndDispatch(ctx context.Context) {
	notifications, err := d.facade.PendingNotifications(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch pending notifications failed", slog.String("error", err.Error()))
		return
	}
	for _, notification := range notifications {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- notification:
		}
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case notification, ok := <-d.jobs:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, notification); err != nil {
				d.logger.Error("notification delivery failed",
					slog.Int64("notification_id", notification.ID),
					slog.String("error", err.Error()))
			}
		}
	}
}
