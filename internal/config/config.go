/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "log"
    "os"
    "strings"
    "time"
)

type Config struct {
    AppEnv   string
    TZ       string
    HTTPAddr string

    JiraBaseURL    string
    JiraAPIKey     string
    JiraUsername   string
    JiraAPIVersion string

    // CommentMode selects the reconciliation policy: "create" posts a new
    // Jira comment for every event, "append" accumulates events into the
    // comment that already references the PR.
    CommentMode string

    HTTPTimeout time.Duration
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func Load() Config {
    cfg := Config{
        AppEnv:   getenv("APP_ENV", "dev"),
        TZ:       getenv("APP_TZ", "UTC"),
        HTTPAddr: getenv("HTTP_ADDR", ":8080"),

        JiraBaseURL:    getenv("JIRA_URL", ""),
        JiraAPIKey:     getenv("JIRA_API_KEY", ""),
        JiraUsername:   getenv("JIRA_USERNAME", ""),
        JiraAPIVersion: getenv("JIRA_API_VERSION", "2"),

        CommentMode: strings.ToLower(getenv("COMMENT_MODE", "create")),

        HTTPTimeout: dur("HTTP_TIMEOUT", 10*time.Second),
    }

    if cfg.CommentMode != "append" { cfg.CommentMode = "create" }

    // set global timezone if available
    if loc, err := time.LoadLocation(cfg.TZ); err == nil {
        time.Local = loc
    } else {
        log.Printf("warning: cannot load TZ %s: %v", cfg.TZ, err)
    }
    return cfg
}
