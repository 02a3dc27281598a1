package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intakeservice "clawdrop/contexts/claims/intake-service"
	"clawdrop/contexts/claims/intake-service/ports"
	intakehttp "clawdrop/contexts/claims/intake-service/transport/http"
)

const testWallet = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

func newTestServer(t *testing.T) (*Server, intakeservice.Module) {
	t.Helper()
	module := intakeservice.NewInMemoryModule(nil, nil)
	return New(module, nil, ":0"), module
}

func submitBody(email string) string {
	return `{"email":"` + email + `","wallet":"` + testWallet + `","entityType":"human","newsletter":"true"}`
}

func TestSubmitEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/airdrop", strings.NewReader(submitBody("claimant@example.com")))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp intakehttp.SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.SubmissionID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("CORS header missing on response")
	}
}

func TestSubmitEndpointValidationFailure(t *testing.T) {
	server, _ := newTestServer(t)

	body := `{"email":"bad","wallet":"short","entityType":"human"}`
	req := httptest.NewRequest(http.MethodPost, "/api/airdrop", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp intakehttp.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("success should be false")
	}
	if !strings.Contains(resp.Error, "Invalid email address") || !strings.Contains(resp.Error, "Invalid Solana wallet address") {
		t.Fatalf("joined violations missing: %q", resp.Error)
	}
}

func TestSubmitEndpointMalformedJSON(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/airdrop", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	server, module := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/airdrop", strings.NewReader(submitBody("claimant@example.com")))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed submission failed: %d %s", rec.Code, rec.Body.String())
	}

	items, err := module.Store.ListSubmissions(context.Background(), ports.FilterAll)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	token := items[0].VerificationToken

	req = httptest.NewRequest(http.MethodGet, "/verify?token="+token, nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp intakehttp.VerifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !strings.Contains(resp.Message, "Email verified") {
		t.Fatalf("unexpected verify response: %+v", resp)
	}
}

func TestVerifyEndpointBadToken(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/verify?token=nonsense", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp intakehttp.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid verification token" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestListEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/airdrop", strings.NewReader(submitBody("claimant@example.com")))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed submission failed: %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/submissions?filter=pending", nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp intakehttp.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Stats.Pending != 1 {
		t.Fatalf("unexpected list response: %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/submissions?filter=bogus", nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown filter status = %d, want 400", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/airdrop", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("allow-origin header missing")
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Fatal("allow-methods header missing POST")
	}
}
