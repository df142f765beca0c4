package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type userGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TelegramNotifier отправляет гостю сообщение о событии его брони.
type TelegramNotifier struct {
	bot    messageSender
	users  userGetter
	logger logger.Logger
}

func NewTelegramNotifier(token string, users userGetter, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, users: users, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, users: users, logger: logger}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

func (n *TelegramNotifier) Handle(ctx context.Context, event domain.Notification) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)",
			logger.String("reservation_id", event.ReservationID),
		)
		return nil
	}

	if event.UserID == "" {
		return nil
	}

	user, err := n.users.GetByID(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("get user for notification: %w", err)
	}

	return n.send(ctx, user.TelegramChatID, messageText(event))
}

func messageText(event domain.Notification) string {
	switch event.Type {
	case domain.NotificationNewReservation:
		return fmt.Sprintf("*Заявка на бронирование отправлена*\n\nБронь: %s\nОжидайте решения владельца.",
			event.ReservationID)
	case domain.NotificationStatusChange:
		if event.NewStatus == domain.ReservationStatusRejected {
			return fmt.Sprintf("*Заявка отклонена*\n\nБронь: %s", event.ReservationID)
		}
		return fmt.Sprintf("*Заявка одобрена!*\n\nБронь: %s\nОплатите бронь, чтобы подтвердить её.",
			event.ReservationID)
	case domain.NotificationPaymentConfirmed:
		return fmt.Sprintf("*Оплата получена, бронирование подтверждено!*\n\nБронь: %s", event.ReservationID)
	default:
		return fmt.Sprintf("Бронь %s: %s", event.ReservationID, event.Type)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) error {
	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return nil
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", *chatID, err)
	}

	return nil
}
