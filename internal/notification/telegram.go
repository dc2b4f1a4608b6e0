package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/AmerSikira/ljubija-crm-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    messageSender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReserved(ctx context.Context, member *domain.Member, reservations []*domain.Reservation) {
	if len(reservations) == 0 {
		return
	}
	n.send(ctx, member.TelegramChatID, reservedText(reservations))
}

func (n *TelegramNotifier) NotifyReleased(ctx context.Context, member *domain.Member, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Rezervacija otkazana*\n\n"+"Grobno mjesto: %s",
		res.Address,
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyExpired(ctx context.Context, member *domain.Member, res *domain.Reservation) {
	text := fmt.Sprintf(
		"*Rezervacija je istekla*\n\n"+"Grobno mjesto: %s\n"+"Mjesto je ponovo slobodno.",
		res.Address,
	)
	n.send(ctx, member.TelegramChatID, text)
}

func reservedText(reservations []*domain.Reservation) string {
	addrs := make([]string, 0, len(reservations))
	for _, r := range reservations {
		addrs = append(addrs, r.Address.String())
	}

	var b strings.Builder
	b.WriteString("*Grobna mjesta rezervisana!*\n\n")
	fmt.Fprintf(&b, "Mjesta: %s\n", strings.Join(addrs, ", "))

	// все брони батча имеют один срок
	if exp := reservations[0].ExpiresAt; exp != nil {
		fmt.Fprintf(&b, "Rezervacija važi do %s (UTC).", exp.UTC().Format(timeLayout))
	} else {
		b.WriteString("Rezervacija nema rok isteka.")
	}
	return b.String()
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
