/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "os"
    "os/signal"
    "syscall"

    "github.com/joho/godotenv"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/adapters/jira"
    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/config"
    httptransport "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/http"
    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/logger"
    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/services"
)

func main() {
    _ = godotenv.Load()
    cfg := config.Load()
    log := logger.New(cfg)

    if cfg.JiraBaseURL == "" || cfg.JiraAPIKey == "" {
        log.Warn().Msg("jira configuration missing; webhook deliveries will fail")
    }

    jc := jira.NewClient(cfg, log)
    svc := services.New(cfg, log, jc)
    router := httptransport.NewRouter(cfg, log, svc)

    log.Info().Str("addr", cfg.HTTPAddr).Str("mode", cfg.CommentMode).Msg("starting webhook bridge")

    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }
}
