package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/westerlund126/onrent-sub000/internal/domain"
)

// TelegramNotifier reports rental status transitions to an ops chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRentalOverdue(ctx context.Context, rental *domain.Rental) {
	text := fmt.Sprintf(
		"*Rental overdue*\n\n"+"Rental: %s\n"+"Items: %s\n"+"Was due: %s",
		rental.ID, itemSKUs(rental), rental.EndDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRentalCompleted(ctx context.Context, rental *domain.Rental) {
	text := fmt.Sprintf(
		"*Rental completed*\n\n"+"Rental: %s\n"+"Items: %s\n"+"Period: %s — %s",
		rental.ID, itemSKUs(rental),
		rental.StartDate.Format("02.01.2006"), rental.EndDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func itemSKUs(rental *domain.Rental) string {
	if len(rental.Items) == 0 {
		return "-"
	}
	skus := make([]string, 0, len(rental.Items))
	for _, it := range rental.Items {
		skus = append(skus, it.SKU)
	}
	return strings.Join(skus, ", ")
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
