/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "context"
    "fmt"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/config"
    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/domain"
    "github.com/rs/zerolog"
)

type jiraAPI interface {
    Comments(ctx context.Context, issueID string) ([]domain.Comment, error)
    AddComment(ctx context.Context, issueID, body string) error
    UpdateComment(ctx context.Context, issueID, commentID, body string) error
}

type Service struct {
    cfg  config.Config
    log  zerolog.Logger
    jira jiraAPI
    mode Mode
}

func New(cfg config.Config, logger zerolog.Logger, jira jiraAPI) *Service {
    return &Service{cfg: cfg, log: logger, jira: jira, mode: Mode(cfg.CommentMode)}
}

// HandleWebhook runs the normalize → synthesize → reconcile pipeline for one
// delivery and issues the resulting Jira call. The returned message goes
// back to the webhook sender; a nil error means HTTP 200.
func (s *Service) HandleWebhook(ctx context.Context, raw map[string]any) (string, error) {
    ev, ok := Normalize(raw)
    if !ok {
        s.log.Info().Str("event_type", toStr(raw["eventType"])).Msg("no Jira task ID found in PR title")
        return "No Jira task ID found", nil
    }

    fragment := Synthesize(ev, ev.Type != domain.EventPRCreated)

    var existing []domain.Comment
    if s.mode == ModeAppend {
        cs, err := s.jira.Comments(ctx, ev.IssueID)
        if err != nil { return "", fmt.Errorf("list comments for %s: %w", ev.IssueID, err) }
        existing = cs
    }

    d := Reconcile(ev.PRURL, fragment, existing, s.mode)
    switch d.Action {
    case domain.ActionUpdate:
        if err := s.jira.UpdateComment(ctx, ev.IssueID, d.CommentID, d.Body); err != nil {
            return "", fmt.Errorf("update comment %s on %s: %w", d.CommentID, ev.IssueID, err)
        }
        s.log.Info().Str("issue", ev.IssueID).Str("event", string(ev.Type)).Str("comment", d.CommentID).Msg("comment updated")
        return "Comment updated in Jira", nil
    default:
        if err := s.jira.AddComment(ctx, ev.IssueID, d.Body); err != nil {
            return "", fmt.Errorf("add comment to %s: %w", ev.IssueID, err)
        }
        s.log.Info().Str("issue", ev.IssueID).Str("event", string(ev.Type)).Msg("comment added")
        return "Comment added to Jira", nil
    }
}
