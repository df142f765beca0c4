package notification

import (
	"context"
	"sync"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Subscriber получает события жизненного цикла брони.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, n domain.Notification) error
}

type subscription struct {
	id  uint64
	sub Subscriber
}

// Hub принимает события от сервисов и раздаёт их подписчикам в фоне.
// Notify не блокирует запрос: событие пишется в журнал и ставится в очередь,
// при переполненной очереди событие отбрасывается.
type Hub struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID uint64

	histMu     sync.Mutex
	history    []domain.Notification
	maxHistory int

	queue  chan domain.Notification
	logger logger.Logger
}

func NewHub(queueSize, maxHistory int, logger logger.Logger) *Hub {
	return &Hub{
		queue:      make(chan domain.Notification, queueSize),
		maxHistory: maxHistory,
		logger:     logger,
	}
}

// Subscribe добавляет подписчика в конец списка и возвращает функцию отписки.
func (h *Hub) Subscribe(s Subscriber) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, sub: s})
	h.mu.Unlock()

	return func() { h.unsubscribe(id) }
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

func (h *Hub) Notify(ctx context.Context, n domain.Notification) {
	h.record(n)

	select {
	case h.queue <- n:
	default:
		h.logger.LogAttrs(ctx, logger.WarnLevel, "notification queue is full, event dropped",
			logger.String("type", string(n.Type)),
			logger.String("reservation_id", n.ReservationID),
		)
	}
}

// History возвращает копию журнала событий.
func (h *Hub) History() []domain.Notification {
	h.histMu.Lock()
	defer h.histMu.Unlock()

	out := make([]domain.Notification, len(h.history))
	copy(out, h.history)
	return out
}

func (h *Hub) record(n domain.Notification) {
	h.histMu.Lock()
	defer h.histMu.Unlock()

	h.history = append(h.history, n)
	if h.maxHistory > 0 && len(h.history) > h.maxHistory {
		h.history = h.history[len(h.history)-h.maxHistory:]
	}
}

// Start раздаёт события до отмены ctx, затем дораздаёт то, что осталось в очереди.
func (h *Hub) Start(ctx context.Context) {
	h.logger.Info("notification dispatcher started",
		logger.Int("queue_size", cap(h.queue)),
	)

	for {
		select {
		case <-ctx.Done():
			h.drain(context.WithoutCancel(ctx))
			h.logger.Info("notification dispatcher stopped")
			return
		case n := <-h.queue:
			h.dispatch(ctx, n)
		}
	}
}

func (h *Hub) drain(ctx context.Context) {
	for {
		select {
		case n := <-h.queue:
			h.dispatch(ctx, n)
		default:
			return
		}
	}
}

func (h *Hub) dispatch(ctx context.Context, n domain.Notification) {
	h.mu.RLock()
	subs := make([]subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.RUnlock()

	if len(subs) == 0 {
		h.logger.Debug("notification has no subscribers",
			logger.String("type", string(n.Type)),
			logger.String("reservation_id", n.ReservationID),
		)
		return
	}

	for _, s := range subs {
		if err := s.sub.Handle(ctx, n); err != nil {
			h.logger.Error("subscriber failed",
				logger.String("subscriber", s.sub.Name()),
				logger.String("type", string(n.Type)),
				logger.String("reservation_id", n.ReservationID),
				logger.String("error", err.Error()),
			)
		}
	}
}
