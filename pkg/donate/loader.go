package donate

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoadFunc загружает библиотеку виджета
type LoadFunc func(ctx context.Context) (PaymentGateway, error)

// Loader загружает виджет один раз. Параллельные вызовы ждут одну загрузку,
// после ошибки следующий вызов пробует снова.
type Loader struct {
	load  LoadFunc
	group singleflight.Group

	mu sync.RWMutex
	gw PaymentGateway
}

func NewLoader(load LoadFunc) *Loader {
	return &Loader{load: load}
}

func (l *Loader) Get(ctx context.Context) (PaymentGateway, error) {
	l.mu.RLock()
	gw := l.gw
	l.mu.RUnlock()
	if gw != nil {
		return gw, nil
	}

	ch := l.group.DoChan("gateway", func() (any, error) {
		l.mu.RLock()
		gw := l.gw
		l.mu.RUnlock()
		if gw != nil {
			return gw, nil
		}

		gw, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.gw = gw
		l.mu.Unlock()
		return gw, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(PaymentGateway), nil
	}
}

// Loaded сообщает, загружен ли виджет
func (l *Loader) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.gw != nil
}
