package userstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/registro/internal/registration"
	pkgredis "github.com/dmitrymomot/registro/pkg/redis"
)

// saveScript inserts a user only when neither its national ID nor its
// e-mail key is taken.
//
// KEYS: users hash, emails hash, order list.
// ARGV: national id, email key, payload.
var saveScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then return 0 end
if redis.call('HEXISTS', KEYS[2], ARGV[2]) == 1 then return 0 end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[3])
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('RPUSH', KEYS[3], ARGV[1])
return 1
`)

// Redis stores users as JSON documents in a hash keyed by national ID.
type Redis struct {
	client    redis.UniversalClient
	usersKey  string
	emailsKey string
	orderKey  string
	opts      options
	now       func() time.Time
}

// NewRedis returns a store whose keys start with prefix.
func NewRedis(client redis.UniversalClient, prefix string, opts ...Option) *Redis {
	if prefix == "" {
		prefix = "registro"
	}
	return &Redis{
		client:    client,
		usersKey:  prefix + ":users",
		emailsKey: prefix + ":users:emails",
		orderKey:  prefix + ":users:order",
		opts:      newOptions("userstore.redis", opts),
		now:       time.Now,
	}
}

// Save inserts the record atomically. A duplicate returns false.
func (s *Redis) Save(ctx context.Context, record registration.UserRecord) (bool, error) {
	e, err := newEntry(uuid.NewString(), record, s.opts.bcryptCost, s.now())
	if err != nil {
		return false, err
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEncodeRecord, err)
	}

	inserted, err := saveScript.Run(ctx, s.client,
		[]string{s.usersKey, s.emailsKey, s.orderKey},
		e.NationalID, e.emailKey(), payload,
	).Int()
	if err != nil {
		return false, fmt.Errorf("save user: %w", err)
	}
	if inserted == 0 {
		s.opts.log.InfoContext(ctx, "duplicate user rejected")
		return false, nil
	}
	return true, nil
}

// FindAll returns users in registration order.
func (s *Redis) FindAll(ctx context.Context) ([]registration.UserRecord, error) {
	ids, err := s.client.LRange(ctx, s.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(ids) == 0 {
		return []registration.UserRecord{}, nil
	}

	values, err := s.client.HMGet(ctx, s.usersKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	records := make([]registration.UserRecord, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		e, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		r, err := e.record()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Ping checks the connection.
func (s *Redis) Ping(ctx context.Context) error {
	return pkgredis.Healthcheck(s.client)(ctx)
}

func (s *Redis) decode(raw string) (entry, error) {
	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return entry{}, fmt.Errorf("%w: %w", ErrDecodeRecord, err)
	}
	return e, nil
}
