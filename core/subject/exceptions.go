package subject

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

func findException(excs []Exception, id string) int {
	for i := range excs {
		if excs[i].ID == id {
			return i
		}
	}
	return -1
}

// AddException appends a new exception to the subject's (lazily initialized)
// list and persists the registry. Insertion order is preserved in storage;
// date order only exists in listing queries.
func (svc *Service) AddException(folderName string, ne NewException) (Exception, error) {
	if err := ne.Validate(); err != nil {
		return Exception{}, err
	}
	i := svc.find(folderName)
	if i < 0 {
		return Exception{}, ErrNotFound
	}

	exc := Exception{
		ID:            uuid.New().String(),
		Date:          ne.Date,
		Day:           ne.Day,
		Time:          ne.Time,
		SubjectFolder: folderName,
	}
	sub := &svc.subjects[i]
	sub.Exceptions = append(sub.Exceptions, exc)
	if err := svc.Save(); err != nil {
		return Exception{}, err
	}

	svc.notifier.Notify(fmt.Sprintf("Exception on %s added to %q", exc.Date, folderName))
	return exc, nil
}

// EditException replaces the identified exception wholesale. The stable ID
// survives the edit; only date/day/time change.
func (svc *Service) EditException(folderName, id string, ne NewException) (Exception, error) {
	if err := ne.Validate(); err != nil {
		return Exception{}, err
	}
	i := svc.find(folderName)
	if i < 0 {
		return Exception{}, ErrNotFound
	}
	sub := &svc.subjects[i]
	j := findException(sub.Exceptions, id)
	if j < 0 {
		return Exception{}, ErrExceptionNotFound
	}

	sub.Exceptions[j] = Exception{
		ID:            id,
		Date:          ne.Date,
		Day:           ne.Day,
		Time:          ne.Time,
		SubjectFolder: folderName,
	}
	if err := svc.Save(); err != nil {
		return Exception{}, err
	}
	return sub.Exceptions[j], nil
}

// DeleteException removes the identified exception; later entries shift down
// by one position.
func (svc *Service) DeleteException(folderName, id string) error {
	i := svc.find(folderName)
	if i < 0 {
		return ErrNotFound
	}
	sub := &svc.subjects[i]
	j := findException(sub.Exceptions, id)
	if j < 0 {
		return ErrExceptionNotFound
	}

	sub.Exceptions = append(sub.Exceptions[:j], sub.Exceptions[j+1:]...)
	if err := svc.Save(); err != nil {
		return err
	}

	svc.notifier.Notify(fmt.Sprintf("Exception removed from %q", folderName))
	return nil
}

// AllExceptions flattens every subject's exceptions, ascending by date
// (lexicographic equals chronological for zero-padded ISO dates).
func (svc *Service) AllExceptions() []Exception {
	excs := make([]Exception, 0)
	for _, sub := range svc.subjects {
		excs = append(excs, sub.Exceptions...)
	}
	sort.SliceStable(excs, func(i, j int) bool { return excs[i].Date < excs[j].Date })
	return excs
}

// UpcomingExceptions is AllExceptions restricted to date >= asOf.
func (svc *Service) UpcomingExceptions(asOf string) []Exception {
	all := svc.AllExceptions()
	excs := make([]Exception, 0, len(all))
	for _, exc := range all {
		if exc.Date >= asOf {
			excs = append(excs, exc)
		}
	}
	return excs
}
