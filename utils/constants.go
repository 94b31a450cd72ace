// File: utils/constants.go
package utils

// UserIDHeader identifies the caller; there is no authentication layer.
const UserIDHeader = "X-User-ID"

// AnonymousUser is used when a request carries no user id.
const AnonymousUser = "anonymous"
