package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"cloudbox/models"

	"github.com/gin-gonic/gin"
)

func postMessage(t *testing.T, r *gin.Engine, qq, text string) map[string]any {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/message", gin.H{
		"qq": qq, "message": text,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("post message status = %d, body %v", w.Code, body)
	}
	return body
}

func listBodies(t *testing.T, r *gin.Engine, path string) []string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	raw, ok := body["messages"].([]any)
	if !ok {
		t.Fatalf("unexpected list shape: %v", body)
	}
	result := make([]string, len(raw))
	for i, item := range raw {
		result[i] = item.(map[string]any)["message"].(string)
	}
	return result
}

func TestMessageLimitAndOrder(t *testing.T) {
	r := newTestRouter(t)
	for _, text := range []string{"A", "B", "C", "D"} {
		postMessage(t, r, "123456", text)
		time.Sleep(2 * time.Millisecond) // millisecond stamps must not collide
	}

	got := listBodies(t, r, "/api/messages?limit=3")
	want := []string{"B", "C", "D"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("messages must come back in ascending order: got %v, want %v", got, want)
		}
	}

	// Unspecified and oversized limits fall back to the configured bounds
	if got := listBodies(t, r, "/api/messages"); len(got) != 4 {
		t.Errorf("default limit should return all 4 messages, got %d", len(got))
	}
	if got := listBodies(t, r, "/api/messages?limit=9999"); len(got) != 4 {
		t.Errorf("oversized limit should clamp, got %d messages", len(got))
	}
}

func TestMessageNicknameLookup(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"qq": "123456", "nickname": "ming", "password": "hunter22",
	})

	postMessage(t, r, "123456", "from a registered user")
	time.Sleep(2 * time.Millisecond)
	postMessage(t, r, "999999", "from a stranger")

	w, body := doJSON(t, r, http.MethodGet, "/api/messages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	raw := body["messages"].([]any)
	if len(raw) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(raw))
	}
	first := raw[0].(map[string]any)
	second := raw[1].(map[string]any)
	if first["nickname"] != "ming" {
		t.Errorf("registered sender should carry a nickname, got %v", first["nickname"])
	}
	if second["nickname"] != nil {
		t.Errorf("unknown sender should have a null nickname, got %v", second["nickname"])
	}
}

func TestMessageValidation(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/message", gin.H{"qq": "123456", "message": "   "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("whitespace-only body must be rejected, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/message", gin.H{
		"qq": "123456", "message": strings.Repeat("长", 1001),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("1001-char body must be rejected, got %d", w.Code)
	}

	w, body := doJSON(t, r, http.MethodPost, "/api/message", gin.H{"qq": "12a45", "message": "hi"})
	if w.Code != http.StatusBadRequest || body["error"] != models.ErrQQInvalid.Error() {
		t.Errorf("malformed sender id must be rejected, got %d %v", w.Code, body)
	}

	body = postMessage(t, r, "123456", "边界 ok")
	if body["id"] == "" || body["id"] == nil {
		t.Error("post must return a generated id")
	}
	if _, ok := body["timestamp"].(float64); !ok {
		t.Errorf("post must return a numeric timestamp, got %T", body["timestamp"])
	}
}
