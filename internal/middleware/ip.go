package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
)

// IPExtractor 決定 c.RealIP() 的來源
// 沒有信任的 proxy 時只看連線位址，忽略 X-Forwarded-For / X-Real-IP
// 有設定時只採信來自這些網段的 X-Forwarded-For
func IPExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
