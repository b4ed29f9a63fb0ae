// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthTokenTTL is the lifetime of issued auth tokens and their session entries.
const AuthTokenTTL = 72 * time.Hour

// CheckoutAttemptPrefix is the prefix used for Redis checkout attempt keys.
const CheckoutAttemptPrefix = "checkout:"

// CheckoutAttemptTTL bounds how long an unconfirmed checkout attempt is kept.
const CheckoutAttemptTTL = 30 * time.Minute
