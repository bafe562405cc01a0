/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "strings"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/domain"
)

// Mode is the reconciliation policy, fixed at deployment time.
type Mode string

const (
    // ModeAppend accumulates every event for a PR into the one comment that
    // already references it, separated by a horizontal rule.
    ModeAppend Mode = "append"
    // ModeCreate posts an independent new comment per event.
    ModeCreate Mode = "create"
)

const separator = "\n\n---\n\n"

// Reconcile decides create-vs-update for a synthesized fragment against a
// snapshot of the issue's existing comments. A comment belongs to the PR
// when its body contains the PR URL; first match in list order wins. The
// snapshot is never mutated.
func Reconcile(prURL, fragment string, existing []domain.Comment, mode Mode) domain.Decision {
    if mode == ModeAppend && prURL != "" {
        for _, c := range existing {
            if strings.Contains(c.Body, prURL) {
                return domain.Decision{
                    Action:    domain.ActionUpdate,
                    CommentID: c.ID,
                    Body:      c.Body + separator + fragment,
                }
            }
        }
    }
    return domain.Decision{Action: domain.ActionCreate, Body: newCommentBody(prURL, fragment)}
}

func newCommentBody(prURL, fragment string) string {
    return "**Azure DevOps Pull Request Updates**\nLink: " + prURL + "\n\n" + fragment
}
