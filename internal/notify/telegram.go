package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const telegramAPI = "https://api.telegram.org"

// Telegram posts notifications to a chat via the Bot API sendMessage
// endpoint.
type Telegram struct {
	botToken string
	chatID   string
	baseURL  string
	http     *http.Client
}

func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  telegramAPI,
		http:     &http.Client{},
	}
}

// NewTelegramWithBaseURL points the channel at a different API host,
// used by tests.
func NewTelegramWithBaseURL(botToken, chatID, baseURL string) *Telegram {
	t := NewTelegram(botToken, chatID)
	t.baseURL = baseURL
	return t
}

func (t *Telegram) Name() string   { return "telegram" }
func (t *Telegram) External() bool { return true }

func (t *Telegram) Send(n *Notification) error {
	msg := t.format(n)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	resp, err := t.http.PostForm(endpoint, url.Values{
		"chat_id":                  {t.chatID},
		"text":                     {msg},
		"parse_mode":               {"Markdown"},
		"disable_web_page_preview": {"true"},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var res struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	if !res.OK {
		return fmt.Errorf("api reported failure (status %s)", resp.Status)
	}
	return nil
}

func (t *Telegram) format(n *Notification) string {
	postingText := ""
	if n.HasPostingText {
		postingText = n.PostingText + ":\n"
	}
	return fmt.Sprintf("%s\nBLZ *%s* account *%s*: *%s*\n_%s_\n%s_%s_\nNew balance: *%s*",
		n.Date,
		n.BLZ, n.AccountNumber, n.Amount,
		n.ApplicantName,
		postingText,
		strings.Join(n.PurposeLines, "\n"),
		n.Balance,
	)
}
