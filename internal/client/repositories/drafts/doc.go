// Package drafts persists the in-progress profile form and the current
// wizard step as key-value rows in the client's local database, so a restart
// resumes the editor exactly where it was left.
//
// Stored text that fails to parse is reported as absent rather than as an
// error; the draft service then falls back to fetching the server profile.
package drafts
