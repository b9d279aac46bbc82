package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/api-sage/mock-bank-portal/src/internal/config"
)

const (
	testChannelID  = "portal"
	testChannelKey = "secret"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler, err := newHandler(config.Config{
		ChannelID:        testChannelID,
		ChannelKey:       testChannelKey,
		SeedBalance:      decimal.RequireFromString("3560.00"),
		SeedTransactions: 20,
		SessionTTL:       30 * time.Minute,
		Location:         time.UTC,
	})
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.SetBasicAuth(testChannelID, testChannelKey)
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func decodeData[T any](t *testing.T, raw []byte) T {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope %q: %v", raw, err)
	}
	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data %q: %v", env.Data, err)
	}
	return data
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp, raw := call(t, server, http.MethodPost, "/auth/login", "", `{"cardNumber":"1234 5678 9012 3456","pin":"1234"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	data := decodeData[struct {
		SessionToken string `json:"sessionToken"`
		CardNumber   string `json:"cardNumber"`
	}](t, raw)
	if data.SessionToken == "" {
		t.Fatal("expected session token")
	}
	if data.CardNumber != "**** **** **** 3456" {
		t.Fatalf("expected masked card number, got %q", data.CardNumber)
	}
	return data.SessionToken
}

func TestHealthNeedsNoCredentials(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLoginRejections(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Post(server.URL+"/auth/login", "application/json", strings.NewReader(`{"cardNumber":"1234567890123456","pin":"1234"}`))
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without channel credentials, got %d", resp.StatusCode)
	}

	resp2, _ := call(t, server, http.MethodPost, "/auth/login", "", `{"cardNumber":"1234567890123456","pin":"9999"}`)
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong pin, got %d", resp2.StatusCode)
	}

	resp3, _ := call(t, server, http.MethodPost, "/auth/login", "", `{"cardNumber":"1234","pin":"1234"}`)
	if resp3.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short card number, got %d", resp3.StatusCode)
	}
}

func TestSessionFlow(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	type account struct {
		HolderName     string          `json:"holderName"`
		FaceIDEnrolled bool            `json:"faceIdEnrolled"`
		Balance        decimal.Decimal `json:"balance"`
	}

	resp, raw := call(t, server, http.MethodGet, "/account", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("account: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	acct := decodeData[account](t, raw)
	if acct.HolderName != "Oleksandr Stoliarchuk" {
		t.Fatalf("unexpected holder %q", acct.HolderName)
	}
	if !acct.FaceIDEnrolled {
		t.Fatal("expected face id enrollment in account summary")
	}
	if !acct.Balance.Equal(decimal.NewFromInt(3560)) {
		t.Fatalf("expected balance 3560, got %s", acct.Balance)
	}

	resp, raw = call(t, server, http.MethodPost, "/account/deposit", token, `{"amount":"100"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deposit: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	op := decodeData[struct {
		Balance decimal.Decimal `json:"balance"`
	}](t, raw)
	if !op.Balance.Equal(decimal.NewFromInt(3660)) {
		t.Fatalf("expected balance 3660, got %s", op.Balance)
	}

	resp, _ = call(t, server, http.MethodPost, "/account/withdraw", token, `{"amount":"5000"}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("overdraft: expected 422, got %d", resp.StatusCode)
	}

	resp, _ = call(t, server, http.MethodPost, "/account/deposit", token, `{"amount":"-5"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative deposit: expected 400, got %d", resp.StatusCode)
	}

	resp, raw = call(t, server, http.MethodGet, "/transactions", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("transactions: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	txs := decodeData[struct {
		Count int `json:"count"`
	}](t, raw)
	if txs.Count != 21 {
		t.Fatalf("expected 21 transactions, got %d", txs.Count)
	}

	resp, _ = call(t, server, http.MethodGet, "/transactions?period=yearly", token, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad period: expected 400, got %d", resp.StatusCode)
	}

	resp, raw = call(t, server, http.MethodGet, "/transactions/export?period=today", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if !strings.Contains(string(raw), "Date,ID,Type,Amount") {
		t.Fatalf("expected csv column header, got %q", raw)
	}

	resp, raw = call(t, server, http.MethodGet, "/atms/nearby", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("atms: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	if atms := decodeData[[]map[string]any](t, raw); len(atms) != 4 {
		t.Fatalf("expected 4 atms, got %d", len(atms))
	}

	resp, raw = call(t, server, http.MethodPost, "/send-money", token, `{"recipientCardNumber":"4111 1111 1111 1111","amount":"50"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send money: expected 200, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = call(t, server, http.MethodGet, "/account", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("account: expected 200, got %d", resp.StatusCode)
	}
	if acct := decodeData[account](t, raw); !acct.Balance.Equal(decimal.NewFromInt(3660)) {
		t.Fatalf("send money must not change balance, got %s", acct.Balance)
	}

	resp, _ = call(t, server, http.MethodPost, "/auth/logout", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}

	resp, _ = call(t, server, http.MethodGet, "/account", token, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("after logout: expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	server := newTestServer(t)
	first := login(t, server)
	second := login(t, server)

	resp, _ := call(t, server, http.MethodPost, "/account/deposit", first, `{"amount":"100"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deposit: expected 200, got %d", resp.StatusCode)
	}

	_, raw := call(t, server, http.MethodGet, "/account", second, "")
	acct := decodeData[struct {
		Balance decimal.Decimal `json:"balance"`
	}](t, raw)
	if !acct.Balance.Equal(decimal.NewFromInt(3560)) {
		t.Fatalf("expected untouched balance in second session, got %s", acct.Balance)
	}
}
