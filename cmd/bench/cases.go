// README: Smoke-check cases; includes HTTP, DB, Redis, and performance checks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
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
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: Postgres connect",
			Focus: "DB reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Env: Redis connect",
			Focus: "Redis reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "FAIL", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: apply (optional)",
			Focus: "Apply migration SQL when requested",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.ApplyMigration {
					return Result{Status: "SKIP", Note: "apply-migrations=false"}
				}
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				for _, path := range strings.Split(r.cfg.MigrationPaths, ",") {
					sql, err := os.ReadFile(strings.TrimSpace(path))
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					for _, s := range splitSQL(string(sql)) {
						if _, err := r.db.Exec(ctx, s); err != nil {
							return Result{Status: "FAIL", Note: err.Error()}
						}
					}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "Migration: tables exist",
			Focus: "Tables from migration SQL present",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				for _, path := range strings.Split(r.cfg.MigrationPaths, ",") {
					tables, err := extractTables(strings.TrimSpace(path))
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					for _, t := range tables {
						var exists bool
						err := r.db.QueryRow(ctx,
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
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "API: health",
			Focus: "Server responds",
			Run: func(ctx context.Context, r *Runner) Result {
				start := time.Now()
				resp, err := r.httpc.Get(base + "/health")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				return Result{Status: "PASS", Latency: time.Since(start)}
			},
		},
		{
			Name:  "API: metrics exposed",
			Focus: "Prometheus endpoint serves counters",
			Run: func(ctx context.Context, r *Runner) Result {
				resp, err := r.httpc.Get(base + "/metrics")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				body, _ := io.ReadAll(resp.Body)
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				if !strings.Contains(string(body), "travel_http_requests_total") {
					return Result{Status: "FAIL", Note: "travel_http_requests_total not found"}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name:  "API: public blogs open",
			Focus: "Blog listing needs no token",
			Run: func(ctx context.Context, r *Runner) Result {
				resp, err := r.httpc.Get(base + "/api/trips/public-blogs")
				if err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				_ = resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					return Result{Status: "FAIL", Note: fmt.Sprintf("status=%d", resp.StatusCode)}
				}
				return Result{Status: "PASS"}
			},
		},
		httpCase("API: estimate without token -> 401", base+"/api/ai/estimate-cost", map[string]any{
			"startLocation": "Chennai",
			"destination":   "Bangalore",
			"mode":          "Car",
			"passengers":    2,
			"date":          "2024-06-10",
		}, []int{401}),
		httpCase("API: trips without token -> 401", base+"/api/trips", map[string]any{}, []int{401}),
		{
			Name:  "Perf: health throughput",
			Focus: "Router overhead under load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/health")
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = strings.NewReader(string(b))
			}
			req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if contains(okStatuses, resp.StatusCode) {
				return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count int64
	var errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) {
				req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
				resp, err := r.httpc.Do(req)
				if err != nil {
					mu.Lock()
					errCount++
					mu.Unlock()
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				mu.Lock()
				count++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: "FAIL", Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: "PASS", Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
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
	cleaned := strings.Join(filtered, "\n")
	parts := strings.Split(cleaned, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
