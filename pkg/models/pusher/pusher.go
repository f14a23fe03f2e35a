package pusher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
	started        atomic.Bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Error(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll keeps the buffer when PushLogic fails so the next tick retries it.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer close(p.done)

		interval := p.PushInterval
		if interval <= 0 {
			interval = time.Second
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop flushes what is left and waits for the push loop to exit.
func (p *Pusher[T]) Stop() {
	if !p.started.Load() {
		if err := p.PushAll(); err != nil {
			p.ErrorHandler(err)
		}
		return
	}

	p.once.Do(func() {
		close(p.stop)
	})
	<-p.done
}
