package collections

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Dump writes the collection to zerolog's global logger at debug level and
// returns c for further chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	return c.DumpTo(log.Logger)
}

// DumpTo writes the collection to logger at debug level and returns c.
//
//	logger := zerolog.New(os.Stderr)
//	collections.New(1, 2, 3).DumpTo(logger).Count()
func (c *Collection[T]) DumpTo(logger zerolog.Logger) *Collection[T] {
	logger.Debug().
		Int("count", len(c.items)).
		Interface("items", c.items).
		Msg("collection")
	return c
}
