package jobs

import "github.com/labstack/echo/v4"

type Handler interface {
	RequestAcquisition() echo.HandlerFunc
	GetJob() echo.HandlerFunc
	ListJobs() echo.HandlerFunc
	ReportProgress() echo.HandlerFunc
}
