package common

// AccessTokenCookieName is the cookie carrying the session token on outbound
// requests to the backend.
const AccessTokenCookieName = "access_token"
