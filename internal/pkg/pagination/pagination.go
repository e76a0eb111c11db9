package pagination

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
	"github.com/inkstone-blog/core/internal/pkg/response"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps article/tag list pages; MaxAuditLimit caps the audit log.
	MaxLimit      = 50
	MaxAuditLimit = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts pagination params from the request, clamping the
// limit to [1, maxLimit].
func FromContext(c *gin.Context, maxLimit int) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)), DefaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Paginate fetches one page of results and the total count concurrently.
// The two reads are independent; a failure in either aborts the response.
func Paginate[T any](ctx context.Context, tx *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	countTx := tx.Session(&gorm.Session{}).WithContext(gctx)
	findTx := tx.Session(&gorm.Session{}).WithContext(gctx)

	g.Go(func() error {
		return countTx.Count(&total).Error
	})
	g.Go(func() error {
		offset := (q.Page - 1) * q.Limit
		return findTx.Offset(offset).Limit(q.Limit).Find(dest).Error
	})
	if err := g.Wait(); err != nil {
		return response.Pagination{}, apperr.Storage(err)
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return response.Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
