package store

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	opsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockbox_store_operations_total",
		Help: "Store operations by backend and operation.",
	}, []string{"backend", "op"})

	opErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lockbox_store_errors_total",
		Help: "Failed store operations by backend and operation.",
	}, []string{"backend", "op"})
)

// Instrumented wraps a Store with Prometheus operation counters.
func Instrumented(s Store, backend string) Store {
	return &instrumented{next: s, backend: backend}
}

type instrumented struct {
	next    Store
	backend string
}

func (i *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok, err := i.next.Get(ctx, key)
	i.count("get", err)
	return raw, ok, err
}

func (i *instrumented) Put(ctx context.Context, key string, value []byte) error {
	err := i.next.Put(ctx, key, value)
	i.count("put", err)
	return err
}

func (i *instrumented) Delete(ctx context.Context, key string) error {
	err := i.next.Delete(ctx, key)
	i.count("delete", err)
	return err
}

// Close forwards to the wrapped store when it holds releasable resources.
func (i *instrumented) Close() error {
	if closer, ok := i.next.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (i *instrumented) count(op string, err error) {
	opsTotal.WithLabelValues(i.backend, op).Inc()
	if err != nil {
		opErrors.WithLabelValues(i.backend, op).Inc()
	}
}
