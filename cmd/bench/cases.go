// README: Benchmark cases; route checks, /generate status mapping, audit table checks and load.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *sql.DB
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := sql.Open("pgx", r.cfg.DSN); err == nil {
			r.db = db
		}
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		_ = r.db.Close()
	}
	return results
}

var validTrip = map[string]any{
	"source":      "New York",
	"destination": "Paris",
	"people":      "2 adults",
	"duration":    3,
	"budget":      "Mid-range",
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "audit log not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.PingContext(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Migration: apply (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migration=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				b, err := os.ReadFile(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, s := range splitSQL(string(b)) {
					if _, err := r.db.ExecContext(ctx, s); err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Migration: tables exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "SKIP", Note: "audit log not configured"}
				}
				tables, err := extractTables(r.cfg.MigrationPath)
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				for _, t := range tables {
					var exists bool
					err := r.db.QueryRowContext(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		getCase("API: health", base+"/health", "text/plain"),
		getCase("API: landing page", base+"/", "text/html"),
		getCase("API: favicon", base+"/favicon.ico", "image/x-icon"),
		getCase("API: static script", base+"/static/script.js", ""),
		getCase("API: audit summary", base+"/api/generations/summary", "application/json"),

		postCase("Generate: missing fields -> 400", base+"/generate", map[string]any{"source": "NYC"}, []int{400}, nil),
		postCase("Generate: zero duration -> 400", base+"/generate", map[string]any{
			"source": "NYC", "destination": "Paris", "people": "2", "duration": 0,
		}, []int{400}, nil),
		{
			Name: "Generate: live itinerary (optional)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Live {
					return Result{Status: "SKIP", Note: "live=false"}
				}
				return liveGenerate(ctx, r, base+"/generate")
			},
		},
		{
			Name: "Perf: concurrent invalid /generate",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/generate", map[string]any{"source": "NYC"})
			},
		},
	}
}

func getCase(name, url, wantContentType string) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			start := time.Now()
			resp, err := r.httpc.Do(req)
			latency := time.Since(start)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if ct := resp.Header.Get("Content-Type"); wantContentType != "" && !strings.HasPrefix(ct, wantContentType) {
				return Result{Status: "FAIL", Latency: latency, Note: "content-type=" + ct}
			}
			return Result{Status: "PASS", Latency: latency}
		},
	}
}

func postCase(name, url string, payload any, passStatuses, pendingStatuses []int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := postJSON(ctx, r.httpc, url, payload)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			if contains(passStatuses, status) {
				return Result{Status: "PASS", Latency: latency}
			}
			if contains(pendingStatuses, status) {
				return Result{Status: "PENDING", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

func liveGenerate(ctx context.Context, r *Runner, url string) Result {
	status, body, latency, err := postJSON(ctx, r.httpc, url, validTrip)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	var out struct {
		Markdown string `json:"markdown"`
		Model    string `json:"model"`
		Detail   string `json:"detail"`
	}
	_ = json.Unmarshal(body, &out)

	switch {
	case status == http.StatusOK && strings.TrimSpace(out.Markdown) != "":
		return Result{Status: "PASS", Latency: latency, Note: "model=" + out.Model}
	case status == http.StatusBadRequest && strings.HasPrefix(out.Detail, "Missing"):
		return Result{Status: "PENDING", Latency: latency, Note: out.Detail}
	default:
		return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d detail=%s", status, out.Detail)}
	}
}

func postJSON(ctx context.Context, client *http.Client, url string, payload any) (int, []byte, time.Duration, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, time.Since(start), err
}

// perfLoad hammers url with payloads that fail validation, so it measures the
// gateway itself without spending Gemini quota.
func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, _ := json.Marshal(payload)
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusBadRequest {
					errCount.Add(1)
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}

func extractTables(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)
	matches := re.FindAllStringSubmatch(string(b), -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables, nil
}

func splitSQL(sql string) []string {
	lines := strings.Split(sql, "\n")
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		l := strings.TrimSpace(line)
		if strings.HasPrefix(l, "--") || l == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	parts := strings.Split(strings.Join(filtered, "\n"), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
