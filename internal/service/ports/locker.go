package ports

import "context"

// Locker сериализует операции по ключу (например, по каравану).
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
