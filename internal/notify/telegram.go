// Package notify отправляет административные уведомления в Telegram.
package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"lessonbook/internal/model"
)

// TelegramNotifier шлёт сообщение администратору о каждой новой брони
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
	logger *zap.Logger
}

func NewTelegramNotifier(token, chatID string, logger *zap.Logger) (*TelegramNotifier, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse admin chat id: %w", err)
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		chatID: id,
		logger: logger,
	}, nil
}

// BookingCreated уведомляет администратора о новой брони.
// Ошибка отправки только логируется — студент её не видит.
func (n *TelegramNotifier) BookingCreated(ctx context.Context, booking *model.Booking) {
	text := fmt.Sprintf(
		"Новая запись на урок\n\nСтудент: %s\nEmail: %s\nТелефон: %s",
		booking.StudentName,
		booking.Email,
		booking.Phone,
	)
	if booking.Slot != nil {
		text += fmt.Sprintf("\nСлот: %s %s", booking.Slot.Day, booking.Slot.Time)
	}

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.logger.Error("Failed to send booking notification",
			zap.String("booking_id", booking.ID),
			zap.Error(err))
		return
	}

	n.logger.Info("Booking notification sent",
		zap.String("booking_id", booking.ID))
}
