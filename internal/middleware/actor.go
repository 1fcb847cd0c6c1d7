package middleware

import "github.com/gin-gonic/gin"

// actorHeader carries the identifier of the operator or system performing a
// posting. Authentication happens upstream at the gateway; the engine only
// records the actor for audit fields.
const actorHeader = "X-Actor-ID"

// defaultActor is used when no actor header is supplied (automated callers).
const defaultActor = "system"

// GetActorID retrieves the acting user or system identifier for audit fields.
func GetActorID(c *gin.Context) string {
	if actor := c.GetHeader(actorHeader); actor != "" {
		return actor
	}
	return defaultActor
}
