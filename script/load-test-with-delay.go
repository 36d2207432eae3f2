package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// registerRequest is the payload for POST /api/auth/register
type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the subset of the register/login response the script needs
type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID            uint64 `json:"id"`
		AccountNumber string `json:"accountNumber"`
		Email         string `json:"email"`
	} `json:"user"`
}

// transferRequest is the payload for POST /api/transfers
type transferRequest struct {
	FromAccountName string `json:"fromAccountName"`
	Recipient       string `json:"recipient"`
	Amount          string `json:"amount"`
	Note            string `json:"note"`
}

// testUser is a registered sender with its bearer token
type testUser struct {
	Token         string
	AccountNumber string
	Email         string
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	SenderStats        map[string]int // Track requests per sender
	ScenarioStats      map[string]int // Track requests per scenario
	Lock               sync.Mutex
}

// TransferScenario defines a transfer scenario
type TransferScenario struct {
	Name    string // For stats tracking
	Amount  string
	ByEmail bool // Address the recipient by email instead of account number
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userCount := flag.Int("users", 3, "Number of users to register and spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	if *userCount < 2 {
		fmt.Println("At least 2 users are needed so transfers have a recipient")
		return
	}

	// Define transfer scenarios. Transfers land as PENDING, so the script
	// exercises the create path regardless of account balances.
	scenarios := []TransferScenario{
		{"Acct Small", "10.00", false},
		{"Acct Medium", "25.00", false},
		{"Acct Large", "75.50", false},
		{"Email Small", "5.00", true},
		{"Email Medium", "33.33", true},
		{"Email Large", "99.99", true},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Printf("Registering %d load-test users...\n", *userCount)
	users, err := registerUsers(client, *baseURL, *userCount)
	if err != nil {
		fmt.Printf("Failed to register users: %v\n", err)
		return
	}

	fmt.Printf("Load testing API across %d users\n", len(users))
	fmt.Printf("Transfer scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		SenderStats:     make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	for _, u := range users {
		stats.SenderStats[u.Email] = 0
	}
	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, users, scenarios, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

// registerUsers creates throwaway accounts so the workers have senders and
// recipients. Email addresses carry a timestamp so reruns never collide.
func registerUsers(client *http.Client, baseURL string, count int) ([]testUser, error) {
	runID := time.Now().UnixNano()
	users := make([]testUser, 0, count)

	for i := 0; i < count; i++ {
		payload := registerRequest{
			FullName: fmt.Sprintf("Load Tester %d", i),
			Email:    fmt.Sprintf("loadtest-%d-%d@example.com", runID, i),
			Password: "loadtest-password",
		}

		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}

		resp, err := client.Post(baseURL+"/api/auth/register", "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusCreated {
			return nil, fmt.Errorf("register returned HTTP %d: %s", resp.StatusCode, string(body))
		}

		var auth authResponse
		if err := json.Unmarshal(body, &auth); err != nil {
			return nil, err
		}

		users = append(users, testUser{
			Token:         auth.Token,
			AccountNumber: auth.User.AccountNumber,
			Email:         auth.User.Email,
		})
	}

	return users, nil
}

func worker(id int, baseURL string, delayMs int, users []testUser,
	scenarios []TransferScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		// Optional delay between requests to prevent rate limiting
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a sender and a distinct recipient
		senderIdx := rand.Intn(len(users))
		recipientIdx := rand.Intn(len(users) - 1)
		if recipientIdx >= senderIdx {
			recipientIdx++
		}
		sender := users[senderIdx]
		recipient := users[recipientIdx]

		// Randomly select a transfer scenario
		scenario := scenarios[rand.Intn(len(scenarios))]

		// Update stats for which sender and scenario was selected
		stats.Lock.Lock()
		stats.SenderStats[sender.Email]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		recipientField := recipient.AccountNumber
		if scenario.ByEmail {
			recipientField = recipient.Email
		}

		transfer := transferRequest{
			Recipient: recipientField,
			Amount:    scenario.Amount,
			Note:      fmt.Sprintf("load test %d-%d", id, jobID),
		}

		jsonData, err := json.Marshal(transfer)
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Create request
		req, err := http.NewRequest("POST", baseURL+"/api/transfers", bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		// Set headers
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+sender.Token)

		// Send the request and measure response time
		startTime := time.Now()
		resp, err := client.Do(req)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			statusCode := resp.StatusCode
			result.StatusCode = statusCode
			result.Success = (statusCode >= 200 && statusCode < 300)
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *TestStats) {
	// Calculate theoretical TPS (ignores actual delays between requests)
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	// Calculate TPS if all requests were successful
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate success rate adjusted TPS
	adjustedTps := theoreticalTps * (float64(stats.SuccessfulRequests) / float64(stats.TotalRequests))

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)
	fmt.Printf("Success-adjusted TPS: %.2f (theoretical * success rate)\n", adjustedTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print sender distribution
	fmt.Println("\n----------------- SENDER DISTRIBUTION -----------------")
	totalSenders := 0
	for _, count := range stats.SenderStats {
		totalSenders += count
	}
	for email, count := range stats.SenderStats {
		if count > 0 {
			fmt.Printf("%-45s: %d requests (%.1f%%)\n", email, count,
				float64(count)/float64(totalSenders)*100)
		}
	}

	// Print scenario distribution
	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}

	fmt.Println("================================================")
}
