package utils

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const MaxPageSize = 100

// ParsePagination reads ?page= and ?page_size= with sane bounds.
func ParsePagination(c *fiber.Ctx, defaultSize int) (page, size int) {
	page = 1
	size = defaultSize

	if pStr := c.Query("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil && p >= 1 {
			page = p
		}
	}

	if sStr := c.Query("page_size"); sStr != "" {
		if s, err := strconv.Atoi(sStr); err == nil {
			if s < 1 {
				size = 1
			} else if s > MaxPageSize {
				size = MaxPageSize
			} else {
				size = s
			}
		}
	}

	return page, size
}

// PageLinks builds the next/previous links of the list envelope, preserving
// the remaining query parameters of the request.
func PageLinks(c *fiber.Ctx, page, size int, total int64) (next, previous *string) {
	if int64(page*size) < total {
		next = pageLink(c, page+1)
	}
	if page > 1 {
		previous = pageLink(c, page-1)
	}
	return next, previous
}

func pageLink(c *fiber.Ctx, page int) *string {
	q := url.Values{}
	for key, value := range c.Queries() {
		q.Set(key, value)
	}
	q.Set("page", strconv.Itoa(page))

	link := c.BaseURL() + c.Path() + "?" + q.Encode()
	return &link
}
