package ports

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
