/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "context"
    "net/http"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/config"
    "github.com/gin-gonic/gin"
    "github.com/rs/zerolog"
)

type service interface {
    HandleWebhook(ctx context.Context, raw map[string]any) (string, error)
}

type Handlers struct {
    cfg config.Config
    log zerolog.Logger
    svc service
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc any) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc.(service)}
}

func (h *Handlers) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Webhook is the single inbound endpoint for Azure DevOps service hooks.
// 400 on missing/invalid JSON, 200 when there is nothing to do or the Jira
// write succeeded, 500 when the outbound call failed.
func (h *Handlers) Webhook(c *gin.Context) {
    var raw map[string]any
    if err := c.ShouldBindJSON(&raw); err != nil || len(raw) == 0 {
        c.JSON(http.StatusBadRequest, gin.H{"message": "No JSON payload received"})
        return
    }

    msg, err := h.svc.HandleWebhook(c.Request.Context(), raw)
    if err != nil {
        h.log.Error().Err(err).Msg("webhook processing failed")
        c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add comment to Jira"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": msg})
}
