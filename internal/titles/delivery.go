package titles

import "github.com/labstack/echo/v4"

type Handler interface {
	GetDetails() echo.HandlerFunc
}
