package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/RentalHandover/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	bookings BookingReader
	users    UserReader
	logger   logger.Logger
}

func NewTelegramNotifier(token string, bookings BookingReader, users UserReader, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{bookings: bookings, users: users, logger: logger}
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

// Notify tells the counterpart of the acting party. Actions by someone outside the booking
// (an operator) go to both parties.
func (n *TelegramNotifier) Notify(ctx context.Context, note domain.Notification) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)",
			logger.String("booking_id", note.BookingID),
		)
		return nil
	}

	b, err := n.bookings.GetByID(ctx, note.BookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	text := messageText(note.Action, b)
	for _, userID := range recipients(b, note.ActorID) {
		u, err := n.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get recipient: %w", err)
		}
		n.send(ctx, u.TelegramChatID, text)
	}

	return nil
}

func recipients(b *domain.Booking, actorID string) []string {
	role, ok := b.RoleOf(actorID)
	if !ok {
		return []string{b.RenterID, b.OwnerID}
	}
	return []string{b.PartyID(role.Counterpart())}
}

func messageText(action domain.Action, b *domain.Booking) string {
	period := fmt.Sprintf("%s – %s", b.StartDate.Format("02.01.2006"), b.EndDate.Format("02.01.2006"))

	switch action {
	case domain.ActionApprove:
		return fmt.Sprintf("*Бронирование подтверждено!*\n\nАренда: %s\nПериод: %s", b.ListingID, period)
	case domain.ActionReject:
		return fmt.Sprintf("*Бронирование отклонено*\n\nАренда: %s\nПричина: %s", b.ListingID, orDash(b.CancellationReason))
	case domain.ActionCancel:
		return fmt.Sprintf("*Бронирование отменено*\n\nАренда: %s\nПричина: %s", b.ListingID, orDash(b.CancellationReason))
	case domain.ActionPickup:
		return fmt.Sprintf("*Передача вещи*\n\nВторая сторона подтвердила передачу по аренде %s.\nСтатус: %s", b.ListingID, statusText(b.Status))
	case domain.ActionReturn:
		return fmt.Sprintf("*Возврат вещи*\n\nВторая сторона подтвердила возврат по аренде %s.\nСтатус: %s", b.ListingID, statusText(b.Status))
	}
	return fmt.Sprintf("Обновление по аренде %s: %s", b.ListingID, statusText(b.Status))
}

func statusText(s domain.BookingStatus) string {
	switch s {
	case domain.BookingStatusConfirmed:
		return "ожидает передачи"
	case domain.BookingStatusInProgress:
		return "в аренде"
	case domain.BookingStatusDisputed:
		return "открыт спор"
	case domain.BookingStatusCompleted:
		return "завершено"
	case domain.BookingStatusCancelled:
		return "отменено"
	}
	return "ожидает подтверждения"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
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
