package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type options struct {
	target   string
	repo     string
	users    []string
	token    string
	rps      int
	duration time.Duration
}

type contributionsRequest struct {
	User    string `json:"user"`
	Repo    string `json:"repo"`
	Refresh bool   `json:"refresh,omitempty"`
	Token   string `json:"token,omitempty"`
}

var httpc = &http.Client{Timeout: 30 * time.Second}

func getURL(u string) (int, error) {
	req, _ := http.NewRequest(http.MethodGet, u, nil)
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func contributionsURL(opts options, path, user string, refresh bool) string {
	q := url.Values{}
	q.Set("user", user)
	q.Set("repo", opts.repo)
	if refresh {
		q.Set("refresh", "true")
	}
	return opts.target + path + "?" + q.Encode()
}

// Прогрев: первый запрос по каждому пользователю заполняет кэш
func warmUp(opts options) error {
	log.Println("Warm-up: filling cache...")

	for _, user := range opts.users {
		status, err := getURL(contributionsURL(opts, "/api/github", user, true))
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN warm-up for %s returned %d\n", user, status)
		}
		time.Sleep(20 * time.Millisecond)
	}

	log.Printf("Warm-up completed: users=%d\n", len(opts.users))
	return nil
}

// Targeter
func makeTargeter(opts options) vegeta.Targeter {
	header := http.Header{"Accept": {"application/json"}}
	if opts.token != "" {
		header.Set("Authorization", "Bearer "+opts.token)
	}

	return func(t *vegeta.Target) error {
		r := rand.Float64()
		user := opts.users[rand.Intn(len(opts.users))]

		// 70% GET /api/github из кэша
		if r < 0.70 {
			t.Method = http.MethodGet
			t.URL = contributionsURL(opts, "/api/github", user, false)
			t.Body = nil
			t.Header = header
			return nil
		}

		// 20% GET /api/github/stats
		if r < 0.90 {
			t.Method = http.MethodGet
			t.URL = contributionsURL(opts, "/api/github/stats", user, false)
			t.Body = nil
			t.Header = header
			return nil
		}

		// 8% POST /api/github
		if r < 0.98 {
			body, _ := json.Marshal(contributionsRequest{
				User:  user,
				Repo:  opts.repo,
				Token: opts.token,
			})
			t.Method = http.MethodPost
			t.URL = opts.target + "/api/github"
			t.Body = body
			t.Header = http.Header{"Content-Type": {"application/json"}}
			return nil
		}

		// 2% принудительное обновление
		t.Method = http.MethodGet
		t.URL = contributionsURL(opts, "/api/github", user, true)
		t.Body = nil
		t.Header = header
		return nil
	}
}

// Attack
func runAttack(opts options) {
	rate := vegeta.Rate{Freq: opts.rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter(opts)

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", opts.target, opts.duration)
	for res := range attacker.Attack(targeter, rate, opts.duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)

	var codes bytes.Buffer
	for code, n := range metrics.StatusCodes {
		fmt.Fprintf(&codes, " %s=%d", code, n)
	}
	fmt.Printf("Status codes:%s\n", codes.String())
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Load test for the PR activity API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.target = strings.TrimRight(opts.target, "/")
			if len(opts.users) == 0 {
				return fmt.Errorf("at least one --user is required")
			}
			if err := warmUp(opts); err != nil {
				return fmt.Errorf("warm-up failed: %w", err)
			}
			runAttack(opts)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.target, "target", "http://localhost:8080", "service base URL")
	cmd.Flags().StringVar(&opts.repo, "repo", "acme/api", "repository owner/name")
	cmd.Flags().StringSliceVar(&opts.users, "user", []string{"alice", "bob", "carol"}, "users to query")
	cmd.Flags().StringVar(&opts.token, "token", os.Getenv("GITHUB_TOKEN"), "token passed to the service")
	cmd.Flags().IntVar(&opts.rps, "rps", 5, "requests per second")
	cmd.Flags().DurationVar(&opts.duration, "duration", time.Minute, "attack duration")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
