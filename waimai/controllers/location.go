// waimai/controllers/location.go
package controllers

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Locator resolves a rough caller location used to flavor the
// recommendation prompt. Lookup failures fall back to the configured city.
type Locator struct {
	http        *resty.Client
	defaultCity string
}

func NewLocator(defaultCity string) *Locator {
	return &Locator{
		http:        resty.New().SetBaseURL("https://ipapi.co").SetTimeout(5 * time.Second),
		defaultCity: defaultCity,
	}
}

// Locate returns a display string like "北京市" for the request's client IP.
func (l *Locator) Locate(r *http.Request) string {
	ip := clientIP(r)
	if isLocalIP(ip) {
		return l.defaultCity + "市"
	}

	var out struct {
		City  string `json:"city"`
		Error bool   `json:"error"`
	}
	resp, err := l.http.R().SetResult(&out).Get("/" + ip + "/json/")
	if err != nil || resp.IsError() || out.Error || out.City == "" {
		return l.defaultCity + "市"
	}
	return out.City + "市"
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isLocalIP(ip string) bool {
	if ip == "" || ip == "localhost" || ip == "::1" || ip == "127.0.0.1" {
		return true
	}
	return strings.HasPrefix(ip, "192.168.") || strings.HasPrefix(ip, "10.")
}
