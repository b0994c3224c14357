// Package common contains shared constants and sentinel errors used across
// gophportal components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SubmissionsChannel is the PostgreSQL notification channel the submissions
// trigger publishes row changes on.
const SubmissionsChannel = "submission_changes"
