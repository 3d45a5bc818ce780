package redis

import (
	"errors"
	"time"

	redigo "github.com/gomodule/redigo/redis"

	"github.com/tradeloot/goapi/base/ctx"
)

const (
	// Forever means the key has no expiration
	Forever = time.Duration(-1)
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redigo.ErrNil

	// ErrNoTTL is returned by TTL when the key has no associated expire
	ErrNoTTL = errors.New("key has no ttl")

	// ErrGapTime is returned when no pool is available
	ErrGapTime = errors.New("redis pool unavailable")
)

// Service abstracts the redis layer over redigo pools.
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
	Name() string
}
