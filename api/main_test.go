package api

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/hofix-app/hofix-api/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()
	os.Exit(m.Run())
}

// identify stubs the auth middleware with a fixed requester
func identify(requester string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", requester)
		c.Next()
	}
}
