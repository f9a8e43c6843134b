package main

import (
	"Pergola/internal/auth"
	"Pergola/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	store := repo.NewPostgresDB(db)

	offset := 0
	for {
		notifyNewLeads(token, adminID, store)

		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.CallbackQuery != nil {
				handleCallback(token, adminID, store, u.CallbackQuery)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

// notifyNewLeads pushes every not-yet-announced quote request to the
// admin chat with contact/dismiss buttons.
func notifyNewLeads(token string, adminID int64, store *repo.PostgresRepository) {
	leads, err := store.ListUnnotifiedLeads(context.Background())
	if err != nil {
		log.Println("ListUnnotifiedLeads error:", err)
		return
	}
	for _, lead := range leads {
		text := fmt.Sprintf("New quote request #%d\n%s\n%s %s\nEstimate: $%.2f",
			lead.ID, lead.Name, lead.Phone, lead.Email, lead.TotalAUD)
		if err := sendLeadMessage(token, adminID, lead.ID, text); err != nil {
			log.Println("sendLeadMessage error:", err)
			continue
		}
		_ = store.MarkLeadNotified(context.Background(), lead.ID)
	}
}

func handleCallback(token string, adminID int64, store *repo.PostgresRepository, cb *CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat.ID != adminID {
		answerCallback(token, cb.ID, "Not allowed")
		return
	}
	parts := strings.Split(cb.Data, ":")
	if len(parts) != 2 {
		answerCallback(token, cb.ID, "Bad data")
		return
	}
	action := parts[0]
	id, _ := strconv.Atoi(parts[1])
	lead, err := store.GetLead(context.Background(), id)
	if err != nil {
		answerCallback(token, cb.ID, "Lead not found")
		return
	}

	switch action {
	case "contact":
		_ = store.UpdateLeadStatus(context.Background(), id, "contacted")
		answerCallback(token, cb.ID, "Marked contacted")
		editMessage(token, cb.Message.Chat.ID, cb.Message.MessageID,
			fmt.Sprintf("✅ Lead #%d (%s) marked contacted", id, lead.Name))
	case "dismiss":
		_ = store.UpdateLeadStatus(context.Background(), id, "dismissed")
		answerCallback(token, cb.ID, "Dismissed")
		editMessage(token, cb.Message.Chat.ID, cb.Message.MessageID,
			fmt.Sprintf("❌ Lead #%d (%s) dismissed", id, lead.Name))
	default:
		answerCallback(token, cb.ID, "Unknown action")
	}
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendLeadMessage(token string, chatID int64, leadID int, text string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]any{{
				{"text": "Contacted", "callback_data": fmt.Sprintf("contact:%d", leadID)},
				{"text": "Dismiss", "callback_data": fmt.Sprintf("dismiss:%d", leadID)},
			}},
		},
	}
	b, _ := json.Marshal(payload)
	res, err := http.Post(url, "application/json", strings.NewReader(string(b)))
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

func answerCallback(token, id, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/answerCallbackQuery", token)
	payload := map[string]any{"callback_query_id": id, "text": text}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}

func editMessage(token string, chatID int64, messageID int, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/editMessageText", token)
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
