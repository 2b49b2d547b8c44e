package utils

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination is offset based; the history view pages with limit/offset.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (p *Pagination) SetLimit(queryLimit string) error {
	if queryLimit == "" {
		p.Limit = defaultLimit
		return nil
	}
	limit, err := strconv.Atoi(queryLimit)
	if err != nil {
		return fmt.Errorf("invalid limit: %q is not a number", queryLimit)
	}
	if limit < 1 || limit > maxLimit {
		return fmt.Errorf("invalid limit: must be between 1 and %d", maxLimit)
	}
	p.Limit = limit
	return nil
}

func (p *Pagination) SetOffset(queryOffset string) error {
	if queryOffset == "" {
		p.Offset = 0
		return nil
	}
	offset, err := strconv.Atoi(queryOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %q is not a number", queryOffset)
	}
	if offset < 0 {
		return fmt.Errorf("invalid offset: must not be negative")
	}
	p.Offset = offset
	return nil
}

func (p *Pagination) GetLimit() int {
	return p.Limit
}

func (p *Pagination) GetOffset() int {
	return p.Offset
}

func (p *Pagination) GetQueryString() string {
	return fmt.Sprintf("limit=%d&offset=%d", p.Limit, p.Offset)
}

func GetPaginationFromCtx(ctx echo.Context) (*Pagination, error) {
	p := &Pagination{}
	if err := p.SetLimit(ctx.QueryParam("limit")); err != nil {
		return nil, err
	}
	if err := p.SetOffset(ctx.QueryParam("offset")); err != nil {
		return nil, err
	}
	return p, nil
}

func GetHasMore(offset, limit, totalCount int) bool {
	return offset+limit < totalCount
}
