//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Runs against a live server, for example one started with PETSIM_STORE=memory.
func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("status", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/pet/status", nil)
		if status != http.StatusOK {
			t.Fatalf("status=%d body=%s", status, string(body))
		}
		var got map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("unmarshal status: %v body=%s", err, string(body))
		}
		petMap := asMap(got["pet"])
		if _, ok := asMap(petMap["needs"])["hunger"]; !ok {
			t.Fatalf("expected pet.needs.hunger in %s", string(body))
		}
		if _, ok := asMap(got["evolution"])["stage"]; !ok {
			t.Fatalf("expected evolution.stage in %s", string(body))
		}
	})

	t.Run("care actions", func(t *testing.T) {
		for _, action := range []string{"feed", "play", "sleep", "heal"} {
			status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/pet/"+action, nil)
			if status != http.StatusOK {
				t.Fatalf("%s status=%d body=%s", action, status, string(body))
			}
			var got map[string]any
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatalf("unmarshal %s: %v body=%s", action, err, string(body))
			}
			if _, ok := got["applied"].(bool); !ok {
				t.Fatalf("%s: expected boolean applied in %s", action, string(body))
			}
		}
	})

	t.Run("eat requires item id", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/pet/eat", map[string]any{})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("shop", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/shop/items?type=food", nil)
		if status != http.StatusOK {
			t.Fatalf("shop status=%d body=%s", status, string(body))
		}
		var got map[string]any
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("unmarshal shop: %v body=%s", err, string(body))
		}
		for _, raw := range asSlice(got["items"]) {
			if asMap(raw)["type"] != "food" {
				t.Fatalf("type filter leaked %v", raw)
			}
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/shop/items/not-an-item/buy", nil)
		if status != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown item, got %d body=%s", status, string(body))
		}
	})

	t.Run("achievements journal ops", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/achievements", nil)
		if status != http.StatusOK {
			t.Fatalf("achievements status=%d body=%s", status, string(body))
		}
		var board map[string]any
		if err := json.Unmarshal(body, &board); err != nil {
			t.Fatalf("unmarshal achievements: %v", err)
		}
		if len(asSlice(board["achievements"])) == 0 {
			t.Fatalf("expected achievement catalog in %s", string(body))
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/journal?limit=5", nil)
		if status != http.StatusOK {
			t.Fatalf("journal status=%d body=%s", status, string(body))
		}
		var journal map[string]any
		if err := json.Unmarshal(body, &journal); err != nil {
			t.Fatalf("unmarshal journal: %v", err)
		}
		if n := len(asSlice(journal["events"])); n > 5 {
			t.Fatalf("journal returned %d events, limit was 5", n)
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		var kpi map[string]any
		if err := json.Unmarshal(body, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v", err)
		}
		if _, ok := kpi["action_total"]; !ok {
			t.Fatalf("expected action_total in %s", string(body))
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, body)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url string, body any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		// 500 with persistence_failure is a real answer, only retry on gateway errors.
		if resp.StatusCode >= 502 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
