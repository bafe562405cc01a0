/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package jira

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/config"
    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/domain"
    "github.com/rs/zerolog"
)

type Client struct {
    baseURL string
    apiKey  string
    user    string
    http    *http.Client
    log     zerolog.Logger
    apiVer  string
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
    return &Client{
        baseURL: cfg.JiraBaseURL,
        apiKey:  cfg.JiraAPIKey,
        user:    cfg.JiraUsername,
        http:    &http.Client{ Timeout: cfg.HTTPTimeout },
        log:     log,
        apiVer:  cfg.JiraAPIVersion,
    }
}

// Comments lists all comments of an issue, following startAt pagination.
func (c *Client) Comments(ctx context.Context, issueID string) ([]domain.Comment, error) {
    if issueID == "" { return nil, errors.New("jira: empty issue key") }
    var out []domain.Comment
    startAt := 0
    for {
        q := url.Values{}
        if startAt > 0 { q.Set("startAt", fmt.Sprint(startAt)) }
        q.Set("maxResults", "100")
        u := c.apiURL(c.issuePath(issueID)+"/comment", q)
        res, err := c.doJSON(ctx, http.MethodGet, u, nil)
        if err != nil { return nil, err }
        arr, _ := res["comments"].([]any)
        if len(arr) == 0 { break }
        for _, c0 := range arr {
            cm, _ := c0.(map[string]any)
            if cm == nil { continue }
            id := fmt.Sprint(cm["id"])
            body, _ := cm["body"].(string)
            out = append(out, domain.Comment{ID: id, Body: body})
        }
        if len(arr) < 100 { break }
        startAt += 100
    }
    return out, nil
}

func (c *Client) AddComment(ctx context.Context, issueID, body string) error {
    if issueID == "" { return errors.New("jira: empty issue key") }
    u := c.apiURL(c.issuePath(issueID)+"/comment", nil)
    _, err := c.doJSON(ctx, http.MethodPost, u, map[string]any{"body": body})
    return err
}

func (c *Client) UpdateComment(ctx context.Context, issueID, commentID, body string) error {
    if issueID == "" { return errors.New("jira: empty issue key") }
    if commentID == "" { return errors.New("jira: empty comment id") }
    u := c.apiURL(c.issuePath(issueID)+"/comment/"+url.PathEscape(commentID), nil)
    _, err := c.doJSON(ctx, http.MethodPut, u, map[string]any{"body": body})
    return err
}

func (c *Client) issuePath(key string) string {
    if c.apiVer == "3" { return "/rest/api/3/issue/" + url.PathEscape(key) }
    return "/rest/api/2/issue/" + url.PathEscape(key)
}

func (c *Client) apiURL(path string, q url.Values) string {
    base := strings.TrimRight(c.baseURL, "/")
    if !strings.HasPrefix(path, "/") { path = "/" + path }
    u := base + path
    if len(q) > 0 { u = u + "?" + q.Encode() }
    return u
}

// doJSON performs a single attempt per call: a failed delivery is the
// webhook sender's problem to redeliver, so there is no retry here. Error
// strings carry the status code but never credentials or response bodies.
func (c *Client) doJSON(ctx context.Context, method, u string, body any) (map[string]any, error) {
    if c.baseURL == "" || c.apiKey == "" { return nil, errors.New("jira: configuration missing") }
    var r io.Reader
    if body != nil {
        b, err := json.Marshal(body)
        if err != nil { return nil, err }
        r = strings.NewReader(string(b))
    }
    req, err := http.NewRequestWithContext(ctx, method, u, r)
    if err != nil { return nil, err }
    if body != nil { req.Header.Set("Content-Type", "application/json") }
    if c.user != "" {
        req.SetBasicAuth(c.user, c.apiKey)
    } else {
        req.Header.Set("Authorization", "Bearer "+c.apiKey)
    }
    resp, err := c.http.Do(req)
    if err != nil { return nil, err }
    defer resp.Body.Close()
    if resp.StatusCode >= 300 {
        c.log.Error().Int("status", resp.StatusCode).Str("method", method).Str("url", u).Msg("jira api error")
        return nil, fmt.Errorf("jira api status=%d", resp.StatusCode)
    }
    var out map[string]any
    if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
        if errors.Is(err, io.EOF) { return map[string]any{}, nil }
        return nil, err
    }
    return out, nil
}
