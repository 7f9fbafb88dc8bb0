package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGinModeFollowsLogLevel(t *testing.T) {
	assert.Equal(t, gin.DebugMode, ginMode("debug"))
	assert.Equal(t, gin.DebugMode, ginMode("DEBUG"))
	assert.Equal(t, gin.DebugMode, ginMode(" Debug "))
	assert.Equal(t, gin.ReleaseMode, ginMode("info"))
	assert.Equal(t, gin.ReleaseMode, ginMode(""))
	assert.Equal(t, gin.ReleaseMode, ginMode("verbose"))
}
