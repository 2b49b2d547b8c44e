package history

import "github.com/labstack/echo/v4"

type Handler interface {
	ListHistory() echo.HandlerFunc
}
