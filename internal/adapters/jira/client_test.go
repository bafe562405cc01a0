package jira

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"
    "time"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/config"
    "github.com/rs/zerolog"
)

func testClient(baseURL, user string) *Client {
    cfg := config.Config{
        JiraBaseURL:    baseURL,
        JiraAPIKey:     "fake_token",
        JiraUsername:   user,
        JiraAPIVersion: "2",
        HTTPTimeout:    2 * time.Second,
    }
    return NewClient(cfg, zerolog.Nop())
}

func TestComments_ParsesListAndAuth(t *testing.T) {
    var gotPath, gotAuth string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotPath = r.URL.Path
        gotAuth = r.Header.Get("Authorization")
        _ = json.NewEncoder(w).Encode(map[string]any{
            "comments": []map[string]any{{"id": "10001", "body": "Link: https://x/pr/1"}},
        })
    }))
    defer srv.Close()

    c := testClient(srv.URL, "")
    cs, err := c.Comments(context.Background(), "ABC-1")
    if err != nil { t.Fatalf("unexpected error: %v", err) }
    if gotPath != "/rest/api/2/issue/ABC-1/comment" { t.Fatalf("path = %q", gotPath) }
    if gotAuth != "Bearer fake_token" { t.Fatalf("auth = %q, want bearer", gotAuth) }
    if len(cs) != 1 || cs[0].ID != "10001" || cs[0].Body != "Link: https://x/pr/1" {
        t.Fatalf("comments = %#v", cs)
    }
}

func TestAddComment_BasicAuthAndBody(t *testing.T) {
    var gotMethod, gotBody string
    var basicOK bool
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotMethod = r.Method
        u, p, ok := r.BasicAuth()
        basicOK = ok && u == "bot" && p == "fake_token"
        var payload map[string]string
        _ = json.NewDecoder(r.Body).Decode(&payload)
        gotBody = payload["body"]
        w.WriteHeader(http.StatusCreated)
        _ = json.NewEncoder(w).Encode(map[string]any{"id": "10002"})
    }))
    defer srv.Close()

    c := testClient(srv.URL, "bot")
    if err := c.AddComment(context.Background(), "ABC-1", "hello"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if gotMethod != http.MethodPost { t.Fatalf("method = %q", gotMethod) }
    if !basicOK { t.Fatalf("expected basic auth when username configured") }
    if gotBody != "hello" { t.Fatalf("body = %q", gotBody) }
}

func TestUpdateComment_TargetsCommentID(t *testing.T) {
    var gotMethod, gotPath string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotMethod = r.Method
        gotPath = r.URL.Path
        _ = json.NewEncoder(w).Encode(map[string]any{"id": "10001"})
    }))
    defer srv.Close()

    c := testClient(srv.URL, "")
    if err := c.UpdateComment(context.Background(), "ABC-1", "10001", "updated"); err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if gotMethod != http.MethodPut { t.Fatalf("method = %q", gotMethod) }
    if gotPath != "/rest/api/2/issue/ABC-1/comment/10001" { t.Fatalf("path = %q", gotPath) }
}

func TestDoJSON_NoRetryOnServerError(t *testing.T) {
    attempts := 0
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        attempts++
        w.WriteHeader(http.StatusBadGateway)
    }))
    defer srv.Close()

    c := testClient(srv.URL, "")
    err := c.AddComment(context.Background(), "ABC-1", "hello")
    if err == nil { t.Fatalf("expected error on 502") }
    if !strings.Contains(err.Error(), "status=502") { t.Fatalf("error = %v", err) }
    if attempts != 1 { t.Fatalf("attempts = %d, want exactly one", attempts) }
}

func TestDoJSON_MissingConfiguration(t *testing.T) {
    c := testClient("", "")
    if err := c.AddComment(context.Background(), "ABC-1", "x"); err == nil {
        t.Fatalf("expected error with empty base URL")
    }
}
