package domain

// EventType is the canonical classification of an inbound webhook event.
// Raw Azure DevOps event type strings are mapped onto these values during
// normalization so nothing downstream branches on payload shape again.
type EventType string

const (
    EventPRCreated EventType = "pr.created"
    EventPRMerged  EventType = "pr.merged"
    EventPRUpdated EventType = "pr.updated"
    EventPRComment EventType = "pr.comment"
    EventUnknown   EventType = "unknown"
)

// Reviewer is one entry of a pull request's reviewer list. Vote is kept as
// the raw decoded JSON value (float64 or string) and classified on render.
type Reviewer struct {
    DisplayName string
    Vote        any
}

// Event is the normalized form of a webhook payload, built once per request.
// Optional fields stay empty when the payload did not carry them.
type Event struct {
    Type    EventType
    RawType string

    Title   string
    IssueID string
    PRURL   string

    SourceCommit string
    EventDate    string
    Status       string
    MergeStatus  string
    Reviewers    []Reviewer

    // populated only for comment events
    CommentAuthor    string
    CommentBody      string
    CommentPublished string
    CommentURL       string
}

// Comment is a Jira issue comment as returned by the comment list endpoint.
type Comment struct {
    ID   string
    Body string
}

type Action int

const (
    ActionCreate Action = iota
    ActionUpdate
)

// Decision is the reconciler's verdict for one synthesized fragment:
// the outbound call to make and the final body to send. CommentID is set
// only for updates.
type Decision struct {
    Action    Action
    CommentID string
    Body      string
}
