// Package redisrepo keeps reservations in Redis for deployments that share
// one Redis between app instances. Every mutation is a Lua script, so the
// check-then-write on a slot runs atomically inside Redis.
package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

// record is the JSON stored per slot. ExpiresAtMs is 0 when there is no expiry.
type record struct {
	ID           string `json:"id"`
	Letter       string `json:"letter"`
	Number       int    `json:"number"`
	HolderID     string `json:"holder_id"`
	ReservedAtMs int64  `json:"reserved_at_ms"`
	ExpiresAtMs  int64  `json:"expires_at_ms"`
}

// KEYS[1] slots hash, KEYS[2] ids hash.
// ARGV[1] slot field, ARGV[2] record, ARGV[3] id, ARGV[4] now in ms.
// Returns {inserted, replaced record or ''}.
var insertScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], ARGV[1])
local replaced = ''
if cur then
  local r = cjson.decode(cur)
  local exp = tonumber(r.expires_at_ms)
  if exp == 0 or exp > tonumber(ARGV[4]) then
    return {0, ''}
  end
  redis.call('HDEL', KEYS[2], r.id)
  replaced = cur
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[3], ARGV[1])
return {1, replaced}
`)

// ARGV[1] id. Returns the deleted record or false.
var deleteScript = redis.NewScript(`
local field = redis.call('HGET', KEYS[2], ARGV[1])
if not field then
  return false
end
redis.call('HDEL', KEYS[2], ARGV[1])
local cur = redis.call('HGET', KEYS[1], field)
if cur and cjson.decode(cur).id == ARGV[1] then
  redis.call('HDEL', KEYS[1], field)
  return cur
end
return false
`)

// ARGV[1] slot field, ARGV[2] record as observed, ARGV[3] id.
// Deletes only if the slot still holds exactly the observed record.
var reapScript = redis.NewScript(`
if redis.call('HGET', KEYS[1], ARGV[1]) == ARGV[2] then
  redis.call('HDEL', KEYS[1], ARGV[1])
  redis.call('HDEL', KEYS[2], ARGV[3])
  return 1
end
return 0
`)

type ReservationStore struct {
	client   redis.UniversalClient
	slotsKey string
	idsKey   string
}

func NewReservationStore(client redis.UniversalClient, prefix string) *ReservationStore {
	return &ReservationStore{
		client:   client,
		slotsKey: prefix + ":slots",
		idsKey:   prefix + ":ids",
	}
}

func (s *ReservationStore) keys() []string {
	return []string{s.slotsKey, s.idsKey}
}

func (s *ReservationStore) FindActive(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	res, _, err := s.get(ctx, addr)
	if err != nil {
		return nil, err
	}
	if !res.IsActive(now) {
		return nil, domain.ErrReservationNotFound
	}
	return res, nil
}

func (s *ReservationStore) ReapSlot(ctx context.Context, addr domain.SlotAddress, now time.Time) (*domain.Reservation, error) {
	res, raw, err := s.get(ctx, addr)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if res.IsActive(now) {
		return nil, nil
	}

	n, err := reapScript.Run(ctx, s.client, s.keys(), addr.Key(), raw, res.ID).Int()
	if err != nil {
		return nil, fmt.Errorf("reap expired slot: %w", err)
	}
	if n == 0 {
		// someone else changed the slot first
		return nil, nil
	}
	return res, nil
}

func (s *ReservationStore) get(ctx context.Context, addr domain.SlotAddress) (*domain.Reservation, string, error) {
	raw, err := s.client.HGet(ctx, s.slotsKey, addr.Key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", domain.ErrReservationNotFound
		}
		return nil, "", fmt.Errorf("get slot: %w", err)
	}

	res, err := decode(raw)
	if err != nil {
		return nil, "", err
	}
	return res, raw, nil
}

func (s *ReservationStore) Insert(ctx context.Context, res *domain.Reservation, now time.Time) (*domain.Reservation, error) {
	raw, err := encode(res)
	if err != nil {
		return nil, err
	}

	out, err := insertScript.Run(ctx, s.client, s.keys(),
		res.Address.Key(), raw, res.ID, now.UnixMilli(),
	).Slice()
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	if len(out) != 2 {
		return nil, fmt.Errorf("insert reservation: unexpected script reply %v", out)
	}
	if ok, _ := out[0].(int64); ok == 0 {
		return nil, domain.ErrAlreadyReserved
	}

	replaced, _ := out[1].(string)
	if replaced == "" {
		return nil, nil
	}
	return decode(replaced)
}

func (s *ReservationStore) DeleteByID(ctx context.Context, id string) (*domain.Reservation, error) {
	raw, err := deleteScript.Run(ctx, s.client, s.keys(), id).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	return decode(raw)
}

func (s *ReservationStore) ReapExpired(ctx context.Context, now time.Time) ([]*domain.Reservation, error) {
	all, err := s.client.HGetAll(ctx, s.slotsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("scan slots: %w", err)
	}

	var reaped []*domain.Reservation
	for field, raw := range all {
		res, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if res.IsActive(now) {
			continue
		}

		n, err := reapScript.Run(ctx, s.client, s.keys(), field, raw, res.ID).Int()
		if err != nil {
			return nil, fmt.Errorf("reap expired slot: %w", err)
		}
		if n == 1 {
			reaped = append(reaped, res)
		}
	}

	return reaped, nil
}

func (s *ReservationStore) ListActive(ctx context.Context, filter domain.SlotFilter, now time.Time) ([]*domain.Reservation, error) {
	all, err := s.client.HGetAll(ctx, s.slotsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("scan slots: %w", err)
	}

	res := make([]*domain.Reservation, 0, len(all))
	for _, raw := range all {
		item, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if !item.IsActive(now) || !filter.Matches(item.Address) {
			continue
		}
		res = append(res, item)
	}

	domain.SortReservations(res)
	return res, nil
}

func encode(r *domain.Reservation) (string, error) {
	rec := record{
		ID:           r.ID,
		Letter:       r.Address.Letter,
		Number:       r.Address.Number,
		HolderID:     r.HolderID,
		ReservedAtMs: r.ReservedAt.UnixMilli(),
	}
	if r.ExpiresAt != nil {
		rec.ExpiresAtMs = r.ExpiresAt.UnixMilli()
		// 0 means "no expiry" in the record.
		if rec.ExpiresAtMs == 0 {
			rec.ExpiresAtMs = -1
		}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode reservation: %w", err)
	}
	return string(b), nil
}

func decode(raw string) (*domain.Reservation, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode reservation: %w", err)
	}

	res := &domain.Reservation{
		ID:         rec.ID,
		Address:    domain.SlotAddress{Letter: rec.Letter, Number: rec.Number},
		HolderID:   rec.HolderID,
		ReservedAt: time.UnixMilli(rec.ReservedAtMs).UTC(),
	}
	if rec.ExpiresAtMs != 0 {
		t := time.UnixMilli(rec.ExpiresAtMs).UTC()
		res.ExpiresAt = &t
	}
	return res, nil
}
