/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "fmt"
    "strings"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/domain"
)

// Synthesize renders the event-specific comment fragment. Missing optional
// fields degrade to placeholder text rather than failing. The reviewer
// summary is appended only when withReviewers is set, and never for
// comment events.
func Synthesize(ev domain.Event, withReviewers bool) string {
    b := &strings.Builder{}

    switch ev.Type {
    case domain.EventPRCreated:
        fmt.Fprintf(b, "PR Created: %s\nLink: %s", ev.Title, ev.PRURL)
    case domain.EventPRMerged:
        fmt.Fprintf(b, "PR Merge Attempted.\nTitle: %s\nMerge Status: %s\nLink: %s", ev.Title, orUnknown(ev.MergeStatus), ev.PRURL)
    case domain.EventPRUpdated:
        fmt.Fprintf(b, "PR Updated.\nTitle: %s\nStatus: %s\nLink: %s", ev.Title, orUnknown(ev.Status), ev.PRURL)
    case domain.EventPRComment:
        // {noformat} keeps user-written content from rendering as Jira markup
        fmt.Fprintf(b, "Comment from %s on PR: %s\n{noformat}%s{noformat}", ev.CommentAuthor, ev.Title, ev.CommentBody)
        if ev.CommentPublished != "" { fmt.Fprintf(b, "\nPublished: %s", ev.CommentPublished) }
        if ev.CommentURL != "" { fmt.Fprintf(b, "\nComment link: %s", ev.CommentURL) }
    default:
        fmt.Fprintf(b, "Azure DevOps Event (%s) related to PR: %s\nLink: %s", ev.RawType, ev.Title, ev.PRURL)
    }

    if ev.SourceCommit != "" {
        fmt.Fprintf(b, "\nCommit: %s", ev.SourceCommit)
        if ev.EventDate != "" { fmt.Fprintf(b, " (%s)", ev.EventDate) }
    }

    if withReviewers && ev.Type != domain.EventPRComment && len(ev.Reviewers) > 0 {
        parts := make([]string, 0, len(ev.Reviewers))
        for _, r := range ev.Reviewers {
            parts = append(parts, r.DisplayName+" - "+VoteLabel(r.Vote))
        }
        fmt.Fprintf(b, "\nReviewers: %s", strings.Join(parts, ", "))
    }

    return b.String()
}

func orUnknown(s string) string {
    if s == "" { return "Unknown" }
    return s
}
