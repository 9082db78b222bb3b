package reminder

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

type recordingNotifier struct {
	msgs []Message
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, msg Message) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := WriterNotifier{W: &buf}

	if err := n.Notify(context.Background(), Message{Kind: KindMorning, Text: "wake up"}); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if got := buf.String(); got != "[morning] wake up\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTelegramNotifier(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifierWithSender(sender, 42)

	if err := n.Notify(context.Background(), Message{Kind: KindEvening, Text: "log today"}); err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("sent %T, want tgbotapi.MessageConfig", sender.sent[0])
	}
	if msg.ChatID != 42 || msg.Text != "log today" {
		t.Errorf("message = chat %d %q", msg.ChatID, msg.Text)
	}
}

func TestTelegramNotifier_SendError(t *testing.T) {
	n := NewTelegramNotifierWithSender(&fakeSender{err: errors.New("network down")}, 42)

	err := n.Notify(context.Background(), Message{Kind: KindMorning, Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "morning reminder") {
		t.Errorf("Notify() error = %v, want wrapped send error", err)
	}
}

func TestNewTelegramNotifier_Validation(t *testing.T) {
	if _, err := NewTelegramNotifier("", 1); err == nil {
		t.Error("expected error for empty token")
	}
	if _, err := NewTelegramNotifier("123:abc", 0); err == nil {
		t.Error("expected error for missing chat id")
	}
}

func TestMultiNotifier(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("boom")}
	ok := &recordingNotifier{}
	m := MultiNotifier{failing, ok}

	err := m.Notify(context.Background(), Message{Kind: KindMorning, Text: "hi"})
	if err == nil {
		t.Error("expected the first error to be returned")
	}
	if len(ok.msgs) != 1 {
		t.Error("later notifiers should still receive the message")
	}
}
