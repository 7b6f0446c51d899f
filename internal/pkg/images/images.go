// Package images rewrites object-storage URLs with render parameters so the
// browser fetches an appropriately sized variant instead of the original.
package images

import (
	"net/url"
	"strconv"
	"strings"
)

const renderSegment = "/storage/v1/render/image/public/"
const objectSegment = "/storage/v1/object/public/"

// Optimize returns src with width/quality render params applied. Non-storage
// URLs (external CDNs, data URIs) pass through untouched.
func Optimize(src string, width, quality int) string {
	if src == "" || !strings.Contains(src, objectSegment) {
		return src
	}
	u, err := url.Parse(src)
	if err != nil {
		return src
	}

	u.Path = strings.Replace(u.Path, objectSegment, renderSegment, 1)
	q := u.Query()
	if width > 0 {
		q.Set("width", strconv.Itoa(width))
	}
	if quality > 0 {
		if quality > 100 {
			quality = 100
		}
		q.Set("quality", strconv.Itoa(quality))
	}
	q.Set("resize", "contain")
	u.RawQuery = q.Encode()
	return u.String()
}
