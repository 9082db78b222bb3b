// Package reminder schedules daily check-in reminders and delivers them through notifiers.
package reminder

import (
	"context"
	"fmt"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/xolan/lifetuner/internal/logger"
)

// Kind identifies which reminder a message belongs to
type Kind string

const (
	KindMorning    Kind = "morning"
	KindEvening    Kind = "evening"
	KindMissedDays Kind = "missed_days"
)

// Message is a single reminder
type Message struct {
	Kind Kind
	Text string
}

// Notifier delivers reminders
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// WriterNotifier prints reminders as lines to W
type WriterNotifier struct {
	W io.Writer
}

// Notify writes msg to the writer
func (n WriterNotifier) Notify(_ context.Context, msg Message) error {
	_, err := fmt.Fprintf(n.W, "[%s] %s\n", msg.Kind, msg.Text)
	return err
}

// MessageSender is the part of *tgbotapi.BotAPI used for delivery
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends reminders to a Telegram chat
type TelegramNotifier struct {
	sender MessageSender
	chatID int64
}

// NewTelegramNotifier connects to the Bot API with token
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is empty (set LIFETUNER_TELEGRAM_TOKEN)")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat_id is not set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	logger.Info("telegram bot authorized", "account", bot.Self.UserName)
	return NewTelegramNotifierWithSender(bot, chatID), nil
}

// NewTelegramNotifierWithSender builds a notifier on an existing sender
func NewTelegramNotifierWithSender(sender MessageSender, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chatID: chatID}
}

// Notify sends msg as a plain text message
func (n *TelegramNotifier) Notify(_ context.Context, msg Message) error {
	if _, err := n.sender.Send(tgbotapi.NewMessage(n.chatID, msg.Text)); err != nil {
		return fmt.Errorf("failed to send %s reminder: %w", msg.Kind, err)
	}
	return nil
}

// MultiNotifier fans out to every notifier, returning the first error
type MultiNotifier []Notifier

// Notify delivers msg to all notifiers
func (m MultiNotifier) Notify(ctx context.Context, msg Message) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil && first == nil {
			first = err
		}
	}
	return first
}
