package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxShopKey       = "shop"
	ShopQueryParam   = "shop"
	ShopDomainHeader = "X-Shop-Domain"
)

// ShopResolver identifies the storefront a request belongs to: the shop query parameter wins,
// then the X-Shop-Domain header, then defaultShop.
func ShopResolver(defaultShop string) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop := strings.TrimSpace(c.Query(ShopQueryParam))
		if shop == "" {
			shop = strings.TrimSpace(c.GetHeader(ShopDomainHeader))
		}
		if shop == "" {
			shop = defaultShop
		}
		c.Set(ctxShopKey, shop)
		c.Next()
	}
}

func GetShop(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxShopKey)
	if !exists {
		return "", false
	}
	shop, ok := v.(string)
	return shop, ok && shop != ""
}
