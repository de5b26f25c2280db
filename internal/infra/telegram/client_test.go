package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homework_status_bot/internal/infra/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func newOfflineBot(t *testing.T, handler http.HandlerFunc) *telebot.Bot {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	bot, err := telebot.NewBot(telebot.Settings{
		URL:     srv.URL,
		Token:   "test-token",
		Offline: true,
	})
	require.NoError(t, err)
	return bot
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var gotPath string
	var gotParams map[string]string
	bot := newOfflineBot(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotParams)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":12345,"type":"private"},"text":"hi"}}`))
	})
	adapter := telegram.NewTelebotAdapter(bot)

	err := adapter.SendMessage("12345", "hi", nil)

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotParams["chat_id"])
	assert.Equal(t, "hi", gotParams["text"])
}

func TestTelebotAdapter_SendMessageToUsername(t *testing.T) {
	var gotParams map[string]string
	bot := newOfflineBot(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotParams)
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":8,"date":1700000000,"chat":{"id":-100,"type":"channel"},"text":"hi"}}`))
	})

	err := telegram.NewTelebotAdapter(bot).SendMessage("@homework_channel", "hi", nil)

	require.NoError(t, err)
	assert.Equal(t, "@homework_channel", gotParams["chat_id"])
}

func TestTelebotAdapter_SendMessageAPIError(t *testing.T) {
	bot := newOfflineBot(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	err := telegram.NewTelebotAdapter(bot).SendMessage("12345", "hi", nil)

	assert.Error(t, err)
}
