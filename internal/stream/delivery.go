package stream

import "github.com/labstack/echo/v4"

type Handler interface {
	ResolveStream() echo.HandlerFunc
	ServeStream() echo.HandlerFunc
}
