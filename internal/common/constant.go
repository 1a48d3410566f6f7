// Package common contains shared constants and sentinel errors used across
// lexdesk components.
package common

// SessionIssuer is written into the iss claim of every session token.
const SessionIssuer = "lexdesk"

// DateLayout is the on-disk and on-screen layout of calendar dates.
const DateLayout = "2006-01-02"
