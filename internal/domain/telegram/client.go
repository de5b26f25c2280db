// internal/domain/telegram/client.go
package telegram

import "gopkg.in/telebot.v3"

// Client sends plain messages to a chat. The recipient is the raw chat
// identifier from configuration: a numeric id or an @username.
type Client interface {
	SendMessage(recipient string, text string, options *telebot.SendOptions) error
}
