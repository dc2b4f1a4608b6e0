package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func newNotifier(t *testing.T) (*TelegramNotifier, *fakeSender) {
	t.Helper()
	sender := &fakeSender{}
	return &TelegramNotifier{bot: sender, logger: newTestLogger(t)}, sender
}

func TestTelegramNotifier_NotifyReserved(t *testing.T) {
	n, sender := newNotifier(t)

	chatID := int64(77)
	member := &domain.Member{ID: "m1", TelegramChatID: &chatID}
	expiresAt := time.Date(2026, 4, 1, 12, 30, 0, 0, time.UTC)
	reservations := []*domain.Reservation{
		{Address: domain.SlotAddress{Letter: "C", Number: 1}, ExpiresAt: &expiresAt},
		{Address: domain.SlotAddress{Letter: "C", Number: 2}, ExpiresAt: &expiresAt},
	}

	n.NotifyReserved(context.Background(), member, reservations)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, chatID, sender.sent[0].ChatID)
	assert.Equal(t, "Markdown", sender.sent[0].ParseMode)
	assert.Contains(t, sender.sent[0].Text, "C1, C2")
	assert.Contains(t, sender.sent[0].Text, "01.04.2026 12:30")
}

func TestTelegramNotifier_NotifyReserved_NoExpiry(t *testing.T) {
	n, sender := newNotifier(t)

	chatID := int64(77)
	n.NotifyReserved(context.Background(), &domain.Member{TelegramChatID: &chatID}, []*domain.Reservation{
		{Address: domain.SlotAddress{Letter: "A", Number: 9}},
	})

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Text, "nema rok isteka")
}

func TestTelegramNotifier_ReleasedAndExpired(t *testing.T) {
	n, sender := newNotifier(t)

	chatID := int64(5)
	member := &domain.Member{TelegramChatID: &chatID}
	res := &domain.Reservation{Address: domain.SlotAddress{Letter: "B", Number: 12}}

	n.NotifyReleased(context.Background(), member, res)
	n.NotifyExpired(context.Background(), member, res)

	require.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[0].Text, "otkazana")
	assert.Contains(t, sender.sent[0].Text, "B12")
	assert.Contains(t, sender.sent[1].Text, "istekla")
}

func TestTelegramNotifier_Skips(t *testing.T) {
	n, sender := newNotifier(t)

	res := &domain.Reservation{Address: domain.SlotAddress{Letter: "B", Number: 12}}

	// no chat id
	n.NotifyExpired(context.Background(), &domain.Member{}, res)

	// cancelled context
	chatID := int64(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyExpired(ctx, &domain.Member{TelegramChatID: &chatID}, res)

	// empty batch
	n.NotifyReserved(context.Background(), &domain.Member{TelegramChatID: &chatID}, nil)

	assert.Empty(t, sender.sent)
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(5)
	assert.NotPanics(t, func() {
		n.NotifyExpired(context.Background(), &domain.Member{TelegramChatID: &chatID},
			&domain.Reservation{Address: domain.SlotAddress{Letter: "A", Number: 1}})
	})
}

func TestTelegramNotifier_SendErrorIsSwallowed(t *testing.T) {
	n, sender := newNotifier(t)
	sender.err = errors.New("telegram down")

	chatID := int64(5)
	assert.NotPanics(t, func() {
		n.NotifyReleased(context.Background(), &domain.Member{TelegramChatID: &chatID},
			&domain.Reservation{Address: domain.SlotAddress{Letter: "A", Number: 1}})
	})
	assert.Len(t, sender.sent, 1)
}
