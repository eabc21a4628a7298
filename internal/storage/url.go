package storage

import (
	"LabSite/config"
	"strings"
)

// PublicURL maps an object key to the URL stored inside records.
func PublicURL(key string) string {
	return config.AppConfig.PublicURLBase + key
}

// KeyFromURL is the inverse of PublicURL. It returns false for URLs that
// do not point into our bucket, so cleanup never touches foreign objects.
func KeyFromURL(url string) (string, bool) {
	base := config.AppConfig.PublicURLBase
	if base == "" || !strings.HasPrefix(url, base) {
		return "", false
	}
	key := strings.TrimPrefix(url, base)
	if key == "" {
		return "", false
	}
	return key, true
}
