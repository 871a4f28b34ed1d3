package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core/subject"
)

type scheduleApi struct {
	svc *subject.Service
}

func registerScheduleAPI(g *echo.Group, svc *subject.Service) {
	api := scheduleApi{svc: svc}

	g.GET("/schedule", api.week)
	g.GET("/schedule/:day", api.day)
	g.GET("/exceptions", api.queryExceptions)
	g.GET("/mode", api.mode)
	g.POST("/mode/toggle", api.toggleMode)
	g.POST("/reconcile", api.reconcile)
	g.GET("/templates", api.queryTemplates)
}

// Handlers

func (api *scheduleApi) week(ctx echo.Context) error {
	var query ScheduleQuery
	if err := query.Bind(ctx, api.svc); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.ResolveWeek(query.Mode, query.AsOf))
}

func (api *scheduleApi) day(ctx echo.Context) error {
	day := ctx.Param("day")
	if !subject.IsWeekday(day) {
		return errHttpNotFound
	}

	var query ScheduleQuery
	if err := query.Bind(ctx, api.svc); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.ResolveDay(day, query.Mode, query.AsOf))
}

func (api *scheduleApi) queryExceptions(ctx echo.Context) error {
	from, err := bindDateParam(ctx, fromParam)
	if err != nil {
		return err
	}
	if from == "" {
		return ctx.JSON(http.StatusOK, api.svc.AllExceptions())
	}
	return ctx.JSON(http.StatusOK, api.svc.UpcomingExceptions(from))
}

func (api *scheduleApi) mode(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ModeResponse{ScheduleMode: api.svc.Mode()})
}

func (api *scheduleApi) toggleMode(ctx echo.Context) error {
	mode, err := api.svc.ToggleMode()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ModeResponse{ScheduleMode: mode})
}

func (api *scheduleApi) reconcile(ctx echo.Context) error {
	var data ReconcileRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReconcileRequest")
	}

	report, err := api.svc.Reconcile(data.Prune)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report)
}

func (api *scheduleApi) queryTemplates(ctx echo.Context) error {
	names, err := api.svc.Templates()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, names)
}
