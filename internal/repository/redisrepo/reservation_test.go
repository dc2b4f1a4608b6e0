package redisrepo

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TEST_REDIS_ADDR=localhost:6379
func newTestStore(t *testing.T) (*ReservationStore, *redis.Client) {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	prefix := "test:" + uuid.New().String()
	store := NewReservationStore(client, prefix)
	t.Cleanup(func() {
		client.Del(context.Background(), store.slotsKey, store.idsKey)
		_ = client.Close()
	})

	return store, client
}

func newReservation(letter string, number int, now time.Time, expiresAt *time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:         uuid.New().String(),
		Address:    domain.SlotAddress{Letter: letter, Number: number},
		HolderID:   uuid.New().String(),
		ReservedAt: now,
		ExpiresAt:  expiresAt,
	}
}

func mustInsert(t *testing.T, store *ReservationStore, res *domain.Reservation, now time.Time) {
	t.Helper()
	replaced, err := store.Insert(context.Background(), res, now)
	require.NoError(t, err)
	require.Nil(t, replaced)
}

func TestEncodeDecode_EpochExpiry(t *testing.T) {
	epoch := time.UnixMilli(0).UTC()
	res := newReservation("A", 1, epoch, &epoch)

	raw, err := encode(res)
	require.NoError(t, err)

	got, err := decode(raw)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt, "epoch expiry must not turn into no expiry")
	assert.False(t, got.IsActive(epoch))
}

func TestReservationStore_InsertAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	res := newReservation("C", 14, now, nil)
	mustInsert(t, store, res, now)

	got, err := store.FindActive(ctx, res.Address, now)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	assert.True(t, now.Equal(got.ReservedAt))

	_, err = store.Insert(ctx, newReservation("C", 14, now, nil), now)
	assert.ErrorIs(t, err, domain.ErrAlreadyReserved)
}

func TestReservationStore_ExpiryAndReap(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	soon := now.Add(time.Minute)
	expiring := newReservation("A", 2, now, &soon)
	mustInsert(t, store, expiring, now)
	mustInsert(t, store, newReservation("A", 3, now, &soon), now)
	mustInsert(t, store, newReservation("B", 1, now, nil), now)

	later := now.Add(time.Hour)

	_, err := store.FindActive(ctx, expiring.Address, later)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	n, err := client.HLen(ctx, store.slotsKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n, "reads never delete")

	reaped, err := store.ReapSlot(ctx, expiring.Address, later)
	require.NoError(t, err)
	require.NotNil(t, reaped)
	assert.Equal(t, expiring.ID, reaped.ID)
	n, err = client.HLen(ctx, store.slotsKey).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	reaped, err = store.ReapSlot(ctx, domain.SlotAddress{Letter: "B", Number: 1}, later)
	require.NoError(t, err)
	assert.Nil(t, reaped, "active slot stays")

	all, err := store.ReapExpired(ctx, later)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A3", all[0].Address.String())

	active, err := store.ListActive(ctx, domain.SlotFilter{}, later)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B1", active[0].Address.String())

	// the freed slot can be taken again
	mustInsert(t, store, newReservation("A", 2, later, nil), later)
}

func TestReservationStore_InsertReturnsReplaced(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	soon := now.Add(time.Minute)
	old := newReservation("E", 5, now, &soon)
	mustInsert(t, store, old, now)

	later := now.Add(time.Hour)
	replaced, err := store.Insert(ctx, newReservation("E", 5, later, nil), later)
	require.NoError(t, err)
	require.NotNil(t, replaced)
	assert.Equal(t, old.ID, replaced.ID)
	assert.Equal(t, old.HolderID, replaced.HolderID)

	deleted, err := store.DeleteByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted, "old id is gone with the replaced record")
}

func TestReservationStore_DeleteByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	res := newReservation("D", 9, now, nil)
	mustInsert(t, store, res, now)

	deleted, err := store.DeleteByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, res.Address, deleted.Address)

	deleted, err = store.DeleteByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestReservationStore_ListActiveFilter(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for _, a := range []domain.SlotAddress{{Letter: "B", Number: 2}, {Letter: "A", Number: 10}, {Letter: "A", Number: 2}} {
		mustInsert(t, store, newReservation(a.Letter, a.Number, now, nil), now)
	}

	all, err := store.ListActive(ctx, domain.SlotFilter{}, now)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A2", all[0].Address.String())
	assert.Equal(t, "A10", all[1].Address.String())

	byNumber, err := store.ListActive(ctx, domain.SlotFilter{Number: 2}, now)
	require.NoError(t, err)
	assert.Len(t, byNumber, 2)
}

func TestReservationStore_ConcurrentInsertSameSlot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	const callers = 20
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := store.Insert(ctx, newReservation("C", 14, now, nil), now)
			if err != nil && !errors.Is(err, domain.ErrAlreadyReserved) {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, won)
}
