package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// TestGenerateEndpointLive drives a running API against the real Gemini backend.
// It needs GEMINI_API_KEY and a server at TRIP_API_BASE_URL (default http://localhost:8000).
func TestGenerateEndpointLive(t *testing.T) {
	t.Logf("[TEST LOG] starting TestGenerateEndpointLive")
	loadDotEnv(t)

	if strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) == "" {
		t.Skip("GEMINI_API_KEY not set; skipping live generation test")
	}

	baseURL := strings.TrimRight(envOrDefault("TRIP_API_BASE_URL", "http://localhost:8000"), "/")
	client := &http.Client{Timeout: 2 * time.Minute}
	waitForAPIReady(t, client, baseURL)

	requestID := fmt.Sprintf("it-%d", time.Now().UnixNano())
	status, body := callGenerate(t, client, baseURL, requestID, map[string]any{
		"source":      "NYC",
		"destination": "Paris",
		"people":      "2",
		"duration":    2,
		"budget":      "Luxury",
	})
	if status != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%s", http.StatusOK, status, string(body))
	}

	var okResp struct {
		Markdown string `json:"markdown"`
		Model    string `json:"model"`
	}
	if err := json.Unmarshal(body, &okResp); err != nil {
		t.Fatalf("unmarshal response: %v, raw=%s", err, string(body))
	}
	if strings.TrimSpace(okResp.Markdown) == "" || !strings.Contains(okResp.Model, "flash") {
		t.Fatalf("unexpected response: %s", string(body))
	}
	t.Logf("[TEST LOG] model=%s markdown bytes=%d", okResp.Model, len(okResp.Markdown))

	// Invalid input never reaches Gemini.
	status, body = callGenerate(t, client, baseURL, requestID+"-bad", map[string]any{"source": "NYC", "duration": 0})
	if status != http.StatusBadRequest {
		t.Fatalf("invalid payload: expected %d, got %d, body=%s", http.StatusBadRequest, status, string(body))
	}

	assertAuditRow(t, requestID, "success")
}

func callGenerate(t *testing.T, client *http.Client, baseURL, requestID string, payload map[string]any) (int, []byte) {
	t.Helper()

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/generate", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /generate: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

// assertAuditRow checks the generation log when the server was started with TRIP_DB_DSN.
func assertAuditRow(t *testing.T, requestID, wantOutcome string) {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TRIP_DB_DSN"))
	if dsn == "" {
		t.Logf("[TEST LOG] TRIP_DB_DSN not set; audit log not checked")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var outcome string
	err = db.QueryRowContext(ctx, "SELECT outcome FROM generation_log WHERE request_id = $1", requestID).Scan(&outcome)
	if err != nil {
		t.Fatalf("query audit row for %s (dsn %s): %v", requestID, redactedDSN(dsn), err)
	}
	if outcome != wantOutcome {
		t.Fatalf("audit outcome = %q, want %q", outcome, wantOutcome)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func redactedDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || at <= scheme+3 {
		return dsn
	}
	return dsn[:scheme+3] + "***:***" + dsn[at:]
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}

// loadDotEnv loads the nearest .env walking up from the test directory; existing variables win.
func loadDotEnv(t *testing.T) {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for i := 0; i < 8; i++ {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			if err := godotenv.Load(candidate); err != nil {
				t.Logf("[TEST LOG] ignoring %s: %v", candidate, err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
