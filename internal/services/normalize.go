/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "fmt"
    "regexp"
    "strings"

    "github.com/fvarellalopes/azure-webhook-to-jira-updates/internal/domain"
)

// Issue tag format: [J:PROJECT-123] or [J:123], alphanumeric and hyphens
var issueTagRe = regexp.MustCompile(`\[J:([\w-]+)\]`)

// first parenthesized URL in a markdown fragment, e.g. [text](https://...)
var markdownURLRe = regexp.MustCompile(`\((https?://[^)\s]+)\)`)

// the stable pull request segment of an Azure DevOps web URL
var prSegmentRe = regexp.MustCompile(`^.*?/pullrequest/\d+`)

// Normalize flattens the several Azure DevOps payload shapes into one
// canonical event. It returns ok=false when the PR title carries no issue
// tag, which callers must treat as a normal outcome, not an error.
func Normalize(raw map[string]any) (domain.Event, bool) {
    rawType := toStr(raw["eventType"])
    resource := subMap(raw, "resource")

    ev := domain.Event{RawType: rawType, Type: classifyEventType(rawType)}

    // Comment events nest the pull request under resource.pullRequest;
    // every other event type carries it directly on resource.
    pr := resource
    if ev.Type == domain.EventPRComment {
        pr = subMap(resource, "pullRequest")
    }

    ev.Title = toStr(pr["title"])
    m := issueTagRe.FindStringSubmatch(ev.Title)
    if m == nil { return domain.Event{}, false }
    ev.IssueID = m[1]

    ev.PRURL = resolvePRURL(raw, resource, pr)

    ev.SourceCommit = firstNonEmpty(
        toStr(subMap(pr, "lastMergeSourceCommit")["commitId"]),
        toStr(subMap(resource, "lastMergeSourceCommit")["commitId"]),
    )
    ev.EventDate = firstNonEmpty(
        toStr(pr["creationDate"]),
        toStr(resource["creationDate"]),
        toStr(raw["createdDate"]),
    )
    ev.Status = firstNonEmpty(toStr(pr["status"]), toStr(resource["status"]))
    ev.MergeStatus = firstNonEmpty(toStr(pr["mergeStatus"]), toStr(resource["mergeStatus"]))

    ev.Reviewers = reviewerList(pr["reviewers"])
    if len(ev.Reviewers) == 0 { ev.Reviewers = reviewerList(resource["reviewers"]) }

    if ev.Type == domain.EventPRComment {
        cm := subMap(resource, "comment")
        ev.CommentAuthor = toStr(subMap(cm, "author")["displayName"])
        if ev.CommentAuthor == "" { ev.CommentAuthor = "Unknown" }
        ev.CommentBody = toStr(cm["content"])
        ev.CommentPublished = toStr(cm["publishedDate"])
        // the comment's own timestamp is more accurate than the outer event's
        if ev.CommentPublished != "" { ev.EventDate = ev.CommentPublished }
        ev.CommentURL = markdownURL(raw)
    }

    return ev, true
}

func classifyEventType(raw string) domain.EventType {
    switch raw {
    case "git.pullrequest.created":
        return domain.EventPRCreated
    case "git.pullrequest.merged":
        return domain.EventPRMerged
    case "git.pullrequest.updated":
        return domain.EventPRUpdated
    case "ms.vss-code.git-pullrequest-comment-event":
        return domain.EventPRComment
    }
    return domain.EventUnknown
}

// resolvePRURL walks the link locations in priority order; the markdown
// fallback is cleaned up so the result stays stable for substring matching
// against stored comments.
func resolvePRURL(raw, resource, pr map[string]any) string {
    if u := toStr(subMap(subMap(pr, "_links"), "web")["href"]); u != "" { return u }
    if u := toStr(resource["url"]); u != "" { return u }
    for _, key := range []string{"pullRequest", "resource"} {
        nested := subMap(resource, key)
        if u := toStr(subMap(subMap(nested, "_links"), "web")["href"]); u != "" { return u }
    }
    if u := markdownURL(raw); u != "" { return cleanPRURL(u) }
    return ""
}

func markdownURL(raw map[string]any) string {
    md := toStr(subMap(raw, "message")["markdown"])
    m := markdownURLRe.FindStringSubmatch(md)
    if m == nil { return "" }
    return m[1]
}

// cleanPRURL strips the query string and truncates at /pullrequest/<n> so
// tracking parameters and discussion anchors do not defeat later matching.
func cleanPRURL(u string) string {
    if i := strings.Index(u, "?"); i >= 0 { u = u[:i] }
    if seg := prSegmentRe.FindString(u); seg != "" { u = seg }
    return u
}

func reviewerList(v any) []domain.Reviewer {
    arr, _ := v.([]any)
    if len(arr) == 0 { return nil }
    out := make([]domain.Reviewer, 0, len(arr))
    for _, r0 := range arr {
        r, _ := r0.(map[string]any)
        if r == nil { continue }
        out = append(out, domain.Reviewer{DisplayName: toStr(r["displayName"]), Vote: r["vote"]})
    }
    return out
}

func subMap(m map[string]any, key string) map[string]any {
    v, _ := m[key].(map[string]any)
    return v
}

func toStr(v any) string {
    if v == nil { return "" }
    if s, ok := v.(string); ok { return s }
    return fmt.Sprint(v)
}

func firstNonEmpty(vals ...string) string {
    for _, v := range vals {
        if v != "" { return v }
    }
    return ""
}
