// Command smoke exercises a running CMS instance end to end: public
// content endpoints, admin login, and one authenticated round trip. It is
// meant for post-deploy verification, not load testing.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type check struct {
	Name     string
	Method   string
	Path     string
	Critical bool
	Contains string
}

type result struct {
	Check    check
	Status   int
	Pass     bool
	Duration time.Duration
	Error    error
}

func main() {
	var (
		base     string
		username string
		password string
		timeout  time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&username, "username", "", "admin username (skip admin checks when empty)")
	flag.StringVar(&password, "password", "", "admin password")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}

	checks := []check{
		{Name: "health", Method: http.MethodGet, Path: "/health", Critical: true, Contains: `"status":"ok"`},
		{Name: "announcements", Method: http.MethodGet, Path: "/api/v1/announcements", Critical: true, Contains: `"data"`},
		{Name: "featured events", Method: http.MethodGet, Path: "/api/v1/events/featured", Critical: true, Contains: `"data"`},
		{Name: "staff directory", Method: http.MethodGet, Path: "/api/v1/staff", Critical: true, Contains: `"teachers"`},
		{Name: "metrics", Method: http.MethodGet, Path: "/metrics", Critical: false, Contains: "http_requests_total"},
	}

	var token string
	if username != "" {
		var err error
		token, err = login(client, base, username, password)
		if err != nil {
			log.Fatalf("admin login failed: %v", err)
		}
		checks = append(checks,
			check{Name: "admin events", Method: http.MethodGet, Path: "/api/v1/admin/events", Critical: true, Contains: `"data"`},
			check{Name: "admin teachers", Method: http.MethodGet, Path: "/api/v1/admin/staff/teachers", Critical: true, Contains: `"data"`},
		)
	}

	breaking := 0
	for _, c := range checks {
		res := run(client, base, token, c)
		printResult(res)
		if !res.Pass && c.Critical {
			breaking++
		}
	}

	if breaking > 0 {
		fmt.Printf("FAILED: %d critical check(s)\n", breaking)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func login(client *http.Client, base, username, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := client.Post(url(base, "/api/v1/auth/login"), "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Data.AccessToken == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return body.Data.AccessToken, nil
}

func run(client *http.Client, base, token string, c check) result {
	res := result{Check: c}

	req, err := http.NewRequest(c.Method, url(base, c.Path), nil)
	if err != nil {
		res.Error = err
		return res
	}
	if token != "" && strings.Contains(c.Path, "/admin/") {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = err
		return res
	}

	res.Pass = resp.StatusCode == http.StatusOK &&
		(c.Contains == "" || strings.Contains(string(body), c.Contains))
	return res
}

func url(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func printResult(r result) {
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	if r.Error != nil {
		fmt.Printf("%-4s %-18s error: %v\n", status, r.Check.Name, r.Error)
		return
	}
	fmt.Printf("%-4s %-18s status=%d %s\n", status, r.Check.Name, r.Status, r.Duration.Round(time.Millisecond))
}
