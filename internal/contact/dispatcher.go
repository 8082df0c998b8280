package contact

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"realestate-listings/internal/logger"
	"realestate-listings/internal/models"

	"github.com/sirupsen/logrus"
)

var (
	// ErrQueueFull is returned when the dispatcher cannot accept more messages.
	ErrQueueFull = errors.New("contact queue is full")
	// ErrDispatcherStopped is returned after Stop.
	ErrDispatcherStopped = errors.New("contact dispatcher stopped")
)

// Notifier delivers an accepted message to whoever handles enquiries.
type Notifier interface {
	Notify(ctx context.Context, msg models.ContactMessage) error
}

// DispatcherConfig sizes the queue and the retry policy.
type DispatcherConfig struct {
	QueueSize  int
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// Dispatcher hands contact messages to a Notifier from a bounded queue
// drained by a fixed pool of workers.
type Dispatcher struct {
	notifier Notifier
	cfg      DispatcherConfig
	queue    chan models.ContactMessage

	mu      sync.RWMutex
	running bool
	stopped bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	enqueued  atomic.Int64
	delivered atomic.Int64
	failed    atomic.Int64
	retries   atomic.Int64
}

func NewDispatcher(notifier Notifier, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &Dispatcher{
		notifier: notifier,
		cfg:      cfg,
		queue:    make(chan models.ContactMessage, cfg.QueueSize),
	}
}

// Start launches the workers. Calling it twice, or after Stop, does nothing.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running || d.stopped {
		logger.Log.Debug("ContactDispatcher: Start ignored")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.running = true
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.run(ctx, i)
	}
	logger.Log.Infof("ContactDispatcher: Started (workers=%d, queue_size=%d, max_retries=%d)",
		d.cfg.Workers, d.cfg.QueueSize, d.cfg.MaxRetries)
}

// Enqueue accepts msg for delivery without blocking.
func (d *Dispatcher) Enqueue(msg models.ContactMessage) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}
	select {
	case d.queue <- msg:
		d.enqueued.Add(1)
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new messages and waits for the queue to drain. When ctx ends
// first, in-flight retries are abandoned and ctx.Err() is returned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return nil
	}
	d.stopped = true
	close(d.queue)
	cancel := d.cancel
	d.mu.Unlock()

	logger.Log.Info("ContactDispatcher: Stopping...")

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Log.Info("ContactDispatcher: Stopped")
		if cancel != nil {
			cancel()
		}
		return nil
	case <-ctx.Done():
		if cancel != nil {
			cancel()
		}
		<-done
		logger.Log.Warn("ContactDispatcher: Stopped before the queue drained")
		return ctx.Err()
	}
}

func (d *Dispatcher) run(ctx context.Context, worker int) {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(ctx, worker, msg)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, worker int, msg models.ContactMessage) {
	entry := logger.Log.WithFields(logrus.Fields{
		"worker":      worker,
		"message_id":  msg.ID,
		"property_id": msg.PropertyID,
	})

	for attempt := 0; ; attempt++ {
		err := d.notifier.Notify(ctx, msg)
		if err == nil {
			d.delivered.Add(1)
			entry.Debug("ContactDispatcher: Delivered")
			return
		}

		if attempt >= d.cfg.MaxRetries {
			d.failed.Add(1)
			entry.WithError(err).Errorf("ContactDispatcher: Giving up after %d attempts", attempt+1)
			return
		}

		d.retries.Add(1)
		entry.WithError(err).Warnf("ContactDispatcher: Retrying in %v (attempt %d/%d)",
			d.cfg.RetryDelay, attempt+1, d.cfg.MaxRetries+1)

		timer := time.NewTimer(d.cfg.RetryDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			d.failed.Add(1)
			entry.Error("ContactDispatcher: Abandoned during shutdown")
			return
		}
	}
}

// Stats is a point-in-time view of the dispatcher.
type Stats struct {
	Running   bool  `json:"running"`
	Workers   int   `json:"workers"`
	Queued    int   `json:"queued"`
	Capacity  int   `json:"capacity"`
	Enqueued  int64 `json:"enqueued"`
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Retries   int64 `json:"retries"`
}

func (d *Dispatcher) GetStats() Stats {
	d.mu.RLock()
	running := d.running && !d.stopped
	d.mu.RUnlock()

	return Stats{
		Running:   running,
		Workers:   d.cfg.Workers,
		Queued:    len(d.queue),
		Capacity:  cap(d.queue),
		Enqueued:  d.enqueued.Load(),
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
		Retries:   d.retries.Load(),
	}
}
