package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotification() *Notification {
	return &Notification{
		Date:           "2024-01-05",
		BLZ:            "10010010",
		AccountNumber:  "123456",
		Amount:         "-20.00 EUR",
		ApplicantName:  "ACME GMBH",
		PostingText:    "SEPA-Lastschrift",
		HasPostingText: true,
		PurposeLines:   []string{"Rent January", "Unit 4B"},
		Balance:        "80.00",
	}
}

func TestTelegramSend(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotForm = map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"text":       r.PostForm.Get("text"),
			"parse_mode": r.PostForm.Get("parse_mode"),
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegramWithBaseURL("token123", "chat42", srv.URL)
	err := tg.Send(testNotification())
	require.NoError(t, err)

	assert.Equal(t, "/bottoken123/sendMessage", gotPath)
	assert.Equal(t, "chat42", gotForm["chat_id"])
	assert.Equal(t, "Markdown", gotForm["parse_mode"])
	assert.Contains(t, gotForm["text"], "BLZ *10010010* account *123456*: *-20.00 EUR*")
	assert.Contains(t, gotForm["text"], "SEPA-Lastschrift:\n")
	assert.Contains(t, gotForm["text"], "Rent January\nUnit 4B")
	assert.Contains(t, gotForm["text"], "New balance: *80.00*")
}

func TestTelegramSend_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	tg := NewTelegramWithBaseURL("token", "chat", srv.URL)
	assert.Error(t, tg.Send(testNotification()))
}

func TestTelegramSend_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	tg := NewTelegramWithBaseURL("token", "chat", srv.URL)
	assert.Error(t, tg.Send(testNotification()))
}

func TestTelegramSend_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	tg := NewTelegramWithBaseURL("token", "chat", srv.URL)
	assert.Error(t, tg.Send(testNotification()))
}
