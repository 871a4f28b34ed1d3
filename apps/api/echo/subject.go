package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core/subject"
)

var errSubNotFoundInCtx = errors.New("subject object not found in echo.Context")

type subjectApi struct {
	svc *subject.Service
}

func registerSubjectAPI(g *echo.Group, svc *subject.Service) {
	api := subjectApi{svc: svc}

	sg := g.Group("/subjects")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/teachers", api.queryTeachers)
	sg.GET("/modules", api.queryModules)
	sg.GET("/rooms", api.queryRooms)
	sg.GET("/times", api.queryTimes)

	// detail endpoints
	dg := sg.Group("/:folder", ctxSubjectMiddleware(api.svc))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)

	eg := dg.Group("/exceptions")
	eg.POST("", api.addException)
	eg.PUT("/:id", api.updateException)
	eg.DELETE("/:id", api.destroyException)
	eg.POST("/:id/note", api.generateNote)
}

// Handlers

func (api *subjectApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.All())
}

func (api *subjectApi) create(ctx echo.Context) error {
	var data subject.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}

	sub, err := api.svc.Create(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}

func (api *subjectApi) retrieve(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) update(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	var data subject.UpdateSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSubject")
	}

	sub, err := api.svc.Edit(sub.FolderName, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *subjectApi) destroy(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	if err := api.svc.Delete(sub.FolderName); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *subjectApi) queryTeachers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Teachers())
}

func (api *subjectApi) queryModules(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Modules())
}

func (api *subjectApi) queryRooms(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Rooms())
}

func (api *subjectApi) queryTimes(ctx echo.Context) error {
	var query ScheduleQuery
	if err := query.Bind(ctx, api.svc); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Times(query.Mode))
}

func (api *subjectApi) addException(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	var data subject.NewException
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewException")
	}

	exc, err := api.svc.AddException(sub.FolderName, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, exc)
}

func (api *subjectApi) updateException(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	var data subject.NewException
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewException")
	}

	exc, err := api.svc.EditException(sub.FolderName, ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, exc)
}

func (api *subjectApi) destroyException(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	if err := api.svc.DeleteException(sub.FolderName, ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *subjectApi) generateNote(ctx echo.Context) error {
	sub, ok := ctx.Get("object").(subject.Subject)
	if !ok {
		return errors.Wrap(errSubNotFoundInCtx, "retrieving object from context")
	}

	var data GenerateNoteRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateNoteRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	notePath, err := api.svc.GenerateNote(sub.FolderName, ctx.Param("id"), data.Template)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, NoteResponse{Path: notePath})
}

func ctxSubjectMiddleware(svc *subject.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sub, err := svc.Get(ctx.Param("folder"))
			if err != nil {
				if errors.Cause(err) == subject.ErrNotFound {
					return errHttpNotFound
				}
				return errors.Wrap(err, "finding subject by folder name")
			}
			ctx.Set("object", sub)
			return next(ctx)
		}
	}
}
