package subject

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/jadwali/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be a scheduled weekday (Monday through Saturday)"

	isoDateTag   = "isodate"
	isoDateText  = "must be an ISO date (YYYY-MM-DD)"
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)

	_ = core.Validate.RegisterValidation(isoDateTag, isoDateValidation)
	core.RegisterCustomTranslation(isoDateTag, isoDateText)
}

// Custom Validators

// weekdayValidation checks that the value is one of the scheduled Weekdays.
func weekdayValidation(fl validator.FieldLevel) bool {
	return IsWeekday(fl.Field().String())
}

// isoDateValidation checks the zero-padded YYYY-MM-DD shape; zero-padding is
// what makes lexicographic date comparison chronological.
func isoDateValidation(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}
