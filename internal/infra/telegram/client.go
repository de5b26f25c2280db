// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// chatRecipient addresses a chat by its raw identifier: a numeric id or an @username.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(recipient string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(chatRecipient(recipient), text, options)
	return err
}
