package repository

import (
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolation    = "23505"
	pgForeignKeyViolated = "23503"
	pgExclusionViolation = "23P01"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// activeStatuses передаёт занимающие даты статусы как text[].
func activeStatuses() any {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, st := range domain.ActiveStatuses {
		out = append(out, string(st))
	}
	return pq.Array(out)
}
