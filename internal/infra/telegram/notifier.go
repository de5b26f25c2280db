// internal/infra/telegram/notifier.go
package telegram

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers status messages to the single configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID string
	logger *logrus.Entry
}

func NewNotifier(client domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger.WithField("chat_id", chatID),
	}
}

// Deliver sends text to the chat. Failures are logged here and returned;
// callers are free to ignore them.
func (n *Notifier) Deliver(text string) error {
	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		n.logger.WithError(err).Error("Failed to send message")
		return err
	}
	n.logger.Info("Message sent successfully")
	return nil
}
