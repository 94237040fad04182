// Package ipfilter содержит middleware для фильтрации запросов по IP-адресу.
// Проверяет, что IP-адрес клиента входит в доверенную подсеть.
package ipfilter

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/go-entropy/internal/server/app"
)

// Middleware представляет middleware для фильтрации запросов по IP-адресу.
type Middleware struct {
	log    *zap.Logger
	subnet *net.IPNet
}

// New создает новый middleware для фильтрации запросов по IP-адресу.
// Некорректный CIDR логируется, и фильтр отключается.
func New(config *app.Config, log *zap.Logger) func(http.Handler) http.Handler {
	m := &Middleware{log: log}

	if config.IsTrustedSubnetEnabled() {
		_, ipNet, err := net.ParseCIDR(config.TrustedSubnet)
		if err != nil {
			log.Error("failed to parse trusted subnet CIDR",
				zap.String("cidr", config.TrustedSubnet),
				zap.Error(err))
		} else {
			m.subnet = ipNet
			log.Info("trusted subnet enabled", zap.Stringer("cidr", ipNet))
		}
	}

	return m.Handler
}

// Handler обрабатывает запрос, проверяя IP-адрес клиента.
// Адрес берётся из X-Real-IP, а при его отсутствии из RemoteAddr.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.subnet == nil {
			next.ServeHTTP(w, r)
			return
		}

		ipStr := r.Header.Get("X-Real-IP")
		if ipStr == "" {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			ipStr = host
		}

		ip := net.ParseIP(ipStr)
		if ip == nil {
			m.log.Warn("invalid client IP address", zap.String("ip", ipStr))
			http.Error(w, "Invalid IP address", http.StatusBadRequest)
			return
		}

		if !m.subnet.Contains(ip) {
			m.log.Warn("IP address not in trusted subnet",
				zap.String("ip", ipStr),
				zap.Stringer("subnet", m.subnet))
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
