package echoapi

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/jadwali/core"
	"github.com/trezcool/jadwali/core/subject"
)

var (
	modeParam = "mode"
	asOfParam = "asof"
	fromParam = "from"

	nowFunc = time.Now // mockable
)

// ScheduleQuery carries the resolver parameters. Mode defaults to the active
// schedule mode and AsOf to today.
type ScheduleQuery struct {
	Mode subject.ScheduleMode
	AsOf string
}

func (q *ScheduleQuery) Bind(ctx echo.Context, svc *subject.Service) error {
	q.Mode = svc.Mode()
	q.AsOf = nowFunc().Format("2006-01-02")

	if val := ctx.QueryParam(modeParam); val != "" {
		mode := subject.ScheduleMode(val)
		if !mode.Valid() {
			return core.NewValidationError(nil, core.FieldError{Field: modeParam, Error: "unknown schedule mode"})
		}
		q.Mode = mode
	}

	asOf, err := bindDateParam(ctx, asOfParam)
	if err != nil {
		return err
	}
	if asOf != "" {
		q.AsOf = asOf
	}
	return nil
}

// bindDateParam returns the named query param, empty when absent, or a
// validation error when it is not an ISO date.
func bindDateParam(ctx echo.Context, param string) (string, error) {
	val := core.CleanString(ctx.QueryParam(param))
	if val == "" {
		return "", nil
	}
	if err := core.Validate.Var(val, "isodate"); err != nil {
		return "", core.NewValidationError(nil, core.FieldError{Field: param, Error: "must be an ISO date (YYYY-MM-DD)"})
	}
	return val, nil
}

type (
	GenerateNoteRequest struct {
		Template string `json:"template" validate:"required"`
	}

	NoteResponse struct {
		Path string `json:"path"`
	}

	ModeResponse struct {
		ScheduleMode subject.ScheduleMode `json:"scheduleMode"`
	}

	ReconcileRequest struct {
		Prune bool `json:"prune"`
	}
)

func (gr *GenerateNoteRequest) Validate() error {
	gr.Template = core.CleanString(gr.Template)
	return core.Validate.Struct(gr)
}
