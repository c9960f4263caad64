package serverutils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// sharedIdentity pools clients whose address cannot be determined into
// one rate-limit bucket instead of giving them unlimited tries.
const sharedIdentity = "shared"

// ClientIdentity derives the rate-limit key for a request. Behind a
// proxy the first X-Forwarded-For hop is the client; otherwise the
// remote address is used.
func ClientIdentity(ctx *fiber.Ctx) string {
	if forwarded := ctx.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	if ip := ctx.IP(); ip != "" {
		return ip
	}
	return sharedIdentity
}
