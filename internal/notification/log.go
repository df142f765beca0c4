package notification

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LogSubscriber пишет события в лог.
type LogSubscriber struct {
	logger logger.Logger
}

func NewLogSubscriber(logger logger.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

func (s *LogSubscriber) Name() string { return "log" }

func (s *LogSubscriber) Handle(ctx context.Context, n domain.Notification) error {
	s.logger.LogAttrs(ctx, logger.InfoLevel, "reservation notification",
		logger.String("type", string(n.Type)),
		logger.String("reservation_id", n.ReservationID),
		logger.String("user_id", n.UserID),
		logger.String("new_status", string(n.NewStatus)),
	)
	return nil
}
