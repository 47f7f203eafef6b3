package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// transferNotification is the body the ledger posts for an inbound transfer
type transferNotification struct {
	TransferID string `json:"transferId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Quantity   string `json:"quantity"`
	Memo       string `json:"memo"`
	Repeat     *bool  `json:"repeat,omitempty"`
}

type result struct {
	depositor    string
	scenario     string
	responseTime time.Duration
	statusCode   int
	err          error
}

type stats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	failed        int
	elapsed       time.Duration
	responseTimes []time.Duration
	errorCounts   map[string]int
	perDepositor  map[string]int
	perScenario   map[string]int
}

type scenario struct {
	name     string
	quantity string
	memo     string
	repeat   *bool
}

func boolPtr(b bool) *bool { return &b }

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of deposits to send")
	depositorsFlag := flag.String("d", "alice,bob,carol", "Comma-separated depositor accounts")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the vault API")
	vault := flag.String("vault", "safekeep", "Vault account")
	issuer := flag.String("issuer", "eosio.token", "Token contract that notifies the deposits")
	signingKey := flag.String("key", "dev-only-signing-key", "HS256 key used to sign the issuer token")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	depositors := strings.Split(*depositorsFlag, ",")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account": *issuer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(*signingKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}

	// one-shot deposits in the same second collide on purpose: they exercise the duplicate path
	scenarios := []scenario{
		{name: "One-shot small", quantity: "1.0000 TOK"},
		{name: "One-shot large", quantity: "250.0000 TOK"},
		{name: "Repeat flag", quantity: "10.0000 TOK", repeat: boolPtr(true)},
		{name: "Repeat memo", quantity: "10.0000 TOK", memo: "1"},
	}

	fmt.Printf("Depositing into %s for %d depositors: %v\n", *vault, len(depositors), depositors)
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	st := &stats{
		total:        *totalRequests,
		errorCounts:  make(map[string]int),
		perDepositor: make(map[string]int),
		perScenario:  make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	results := make(chan result, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				depositor := depositors[rand.Intn(len(depositors))]
				sc := scenarios[rand.Intn(len(scenarios))]
				results <- deposit(client, *baseURL, token, transferNotification{
					TransferID: uuid.NewString(),
					From:       depositor,
					To:         *vault,
					Quantity:   sc.quantity,
					Memo:       sc.memo,
					Repeat:     sc.repeat,
				}, sc.name)
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			st.record(r)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	st.elapsed = time.Since(start)

	st.print()
}

func deposit(client *http.Client, baseURL, token string, n transferNotification, scenarioName string) result {
	r := result{depositor: n.From, scenario: scenarioName}

	body, err := json.Marshal(n)
	if err != nil {
		r.err = err
		return r
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/notifications/transfer", bytes.NewReader(body))
	if err != nil {
		r.err = err
		return r
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	r.responseTime = time.Since(start)
	if err != nil {
		r.err = err
		return r
	}
	defer resp.Body.Close()

	r.statusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return r
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.perDepositor[r.depositor]++
	s.perScenario[r.scenario]++
	if r.err != nil {
		s.failed++
		s.errorCounts[r.err.Error()]++
		return
	}
	s.succeeded++
	s.responseTimes = append(s.responseTimes, r.responseTime)
}

func (s *stats) print() {
	sort.Slice(s.responseTimes, func(i, j int) bool { return s.responseTimes[i] < s.responseTimes[j] })
	percentile := func(p int) time.Duration {
		if len(s.responseTimes) == 0 {
			return 0
		}
		return s.responseTimes[len(s.responseTimes)*p/100]
	}

	fmt.Println("\n================= DEPOSIT LOAD RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", s.total)
	fmt.Printf("Accepted:            %d\n", s.succeeded)
	fmt.Printf("Rejected or failed:  %d\n", s.failed)
	fmt.Printf("Total Time:          %.2f seconds\n", s.elapsed.Seconds())
	fmt.Printf("Accepted per second: %.2f\n", float64(s.succeeded)/s.elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50: %v  P90: %v  P99: %v\n", percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- DEPOSITORS -----------------")
	for depositor, count := range s.perDepositor {
		fmt.Printf("%-12s: %d\n", depositor, count)
	}

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for name, count := range s.perScenario {
		fmt.Printf("%-15s: %d\n", name, count)
	}

	if s.failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range s.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
