package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool
	NotifyFunc      func(err error, next time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	// 0 - без ограничения по числу попыток, только MaxElapsedTime
	MaxRetries uint64

	// nil - ретраятся все ошибки
	ShouldRetry ShouldRetryFunc
	// вызывается перед каждой повторной попыткой
	OnRetry NotifyFunc
}

// Quick - короткие ретраи для операций внутри запроса (публикация события, запись в кеш).
func Quick() Config {
	return Config{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  3 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      3,
	}
}

// Connect - длинные ретраи для установки соединений при старте.
func Connect() Config {
	return Config{
		InitialInterval: 5 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
