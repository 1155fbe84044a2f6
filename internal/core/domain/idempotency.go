package domain

import "github.com/google/uuid"

// BuildOrderIdempotencyKey constructs the cache key for a purchase request.
// Format: "account_id:request_id".
func BuildOrderIdempotencyKey(accountID uuid.UUID, requestID string) string {
	return accountID.String() + ":" + requestID
}
