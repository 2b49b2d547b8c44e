package releases

import "github.com/labstack/echo/v4"

type Handler interface {
	ListReleases() echo.HandlerFunc
}
