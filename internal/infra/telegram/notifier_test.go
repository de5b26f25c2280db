package telegram_test

import (
	"errors"
	"testing"

	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type sentMessage struct {
	recipient string
	text      string
}

type fakeClient struct {
	sent []sentMessage
	err  error
}

func (f *fakeClient) SendMessage(recipient string, text string, _ *telebot.SendOptions) error {
	f.sent = append(f.sent, sentMessage{recipient: recipient, text: text})
	return f.err
}

func TestNotifier_Deliver(t *testing.T) {
	client := &fakeClient{}
	log, hook := test.NewNullLogger()
	n := telegram.NewNotifier(client, "12345", logrus.NewEntry(log))

	err := n.Deliver("hello")

	require.NoError(t, err)
	assert.Equal(t, []sentMessage{{recipient: "12345", text: "hello"}}, client.sent)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "12345", hook.LastEntry().Data["chat_id"])
}

func TestNotifier_DeliverFailureIsLogged(t *testing.T) {
	sendErr := errors.New("telegram: chat not found (400)")
	client := &fakeClient{err: sendErr}
	log, hook := test.NewNullLogger()
	n := telegram.NewNotifier(client, "12345", logrus.NewEntry(log))

	err := n.Deliver("hello")

	assert.ErrorIs(t, err, sendErr)
	assert.Len(t, client.sent, 1)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, sendErr, hook.LastEntry().Data[logrus.ErrorKey])
}
