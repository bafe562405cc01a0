/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "encoding/json"
    "fmt"
    "strconv"
    "strings"
)

// VoteLabel maps an Azure DevOps reviewer vote to a readable status. The
// raw JSON value comes in as float64 or string; anything non-numeric is
// passed through untouched and an absent vote renders as empty.
func VoteLabel(vote any) string {
    switch v := vote.(type) {
    case nil:
        return ""
    case float64:
        return voteText(int(v))
    case int:
        return voteText(v)
    case int64:
        return voteText(int(v))
    case json.Number:
        n, err := v.Int64()
        if err != nil { return v.String() }
        return voteText(int(n))
    case string:
        n, err := strconv.Atoi(strings.TrimSpace(v))
        if err != nil { return v }
        return voteText(n)
    }
    return ""
}

func voteText(v int) string {
    switch v {
    case 10:
        return "Approved"
    case -10:
        return "Rejected"
    case -5:
        return "Waiting on author"
    case 0:
        return "Waiting for review"
    }
    return fmt.Sprintf("vote=%d", v)
}
