package storage

import (
	"log/slog"
	"os"

	"github.com/hupe1980/memlayout/internal/conv"
	"github.com/hupe1980/memlayout/internal/mmap"
)

// Options configures page-aligned storage construction.
type Options struct {
	// Logger receives diagnostics about the allocation path. Nil disables
	// logging.
	Logger *slog.Logger
}

// Option is a configuration option for Page.
type Option func(*Options)

// WithLogger sets the logger used for allocation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Page returns a buffer of exactly size bytes aligned to the OS page
// size, backed by an anonymous mapping. If the platform refuses the
// mapping, Page falls back to heap over-allocation; the alignment
// guarantee holds either way. Mapped buffers should be released with
// Close.
func Page(size uintptr, opts ...Option) (*Buffer, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	n, err := conv.UintptrToInt(size)
	if err != nil {
		return nil, err
	}

	pageSize := uintptr(os.Getpagesize())
	mapSize, err := conv.UintptrToInt(alignUp(size, pageSize))
	if err != nil {
		return nil, err
	}

	m, err := mmap.MapAnon(mapSize)
	if err != nil {
		// Mapping failure is environmental (ulimits, exotic platforms),
		// not a caller error. The offset strategy still satisfies the
		// alignment contract.
		if o.Logger != nil {
			o.Logger.Warn("anonymous mapping failed, falling back to heap",
				"size", size,
				"error", err,
			)
		}
		return &Buffer{data: allocOffset(pageSize)(n), align: pageSize}, nil
	}

	if o.Logger != nil {
		o.Logger.Debug("page storage mapped",
			"size", size,
			"mapped", mapSize,
		)
	}

	return &Buffer{data: m.Bytes()[:n], align: pageSize, mapping: m}, nil
}
