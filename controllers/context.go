package controllers

import "github.com/gin-gonic/gin"

// currentUserID extracts the authenticated user's id from the context
func currentUserID(ctx *gin.Context) uint {
	raw, exists := ctx.Get("userID")
	if !exists {
		return 0
	}
	switch v := raw.(type) {
	case float64:
		return uint(v)
	case uint:
		return v
	case int:
		return uint(v)
	default:
		return 0
	}
}
