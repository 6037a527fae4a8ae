package helpers

import "github.com/gin-gonic/gin"

// HasFormKey reports whether the form carried the key at all. Checkbox
// fields submit the key only when checked, so presence is the value.
func HasFormKey(c *gin.Context, key string) bool {
	_, ok := c.GetPostForm(key)
	return ok
}
