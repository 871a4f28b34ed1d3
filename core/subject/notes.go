package subject

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/jadwali/core"
)

var (
	// <%* ... %> blocks carry author-time template logic; they are stripped,
	// not evaluated. Any other <% ... %> token left after substitution is
	// blanked rather than errored on.
	directiveRegex = regexp.MustCompile(`(?s)<%\*.*?%>\r?\n?`)
	leftoverRegex  = regexp.MustCompile(`(?s)<%.*?%>`)

	placeholderRegexes = compilePlaceholders(
		"subjectName", "teacher", "module", "room", "day", "time", "date", "mode")
)

func compilePlaceholders(names ...string) map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(names))
	for _, name := range names {
		res[name] = regexp.MustCompile(`<%\s*` + name + `\s*%>`)
	}
	return res
}

// RenderNoteBody produces a note body from a template: directive blocks are
// stripped, the closed set of placeholders is filled from the subject and
// exception, and whatever tokens remain are blanked.
func RenderNoteBody(tmpl string, sub Subject, exc Exception, mode ScheduleMode) string {
	out := directiveRegex.ReplaceAllString(tmpl, "")

	values := map[string]string{
		"subjectName": sub.Name,
		"teacher":     sub.Teacher,
		"module":      sub.Module,
		"room":        sub.Room,
		"day":         exc.Day,
		"time":        exc.Time,
		"date":        exc.Date,
		"mode":        string(mode) + " (Exception)",
	}
	for name, re := range placeholderRegexes {
		out = re.ReplaceAllString(out, values[name])
	}

	return leftoverRegex.ReplaceAllString(out, "")
}

// Templates lists the basenames offered as note templates.
func (svc *Service) Templates() ([]string, error) {
	names, err := svc.vault.ListFiles(svc.conf.TemplatesDir)
	if err != nil {
		return nil, errors.Wrap(err, "listing templates")
	}
	return names, nil
}

func slugify(templateName string) string {
	base := strings.TrimSuffix(templateName, path.Ext(templateName))
	return strings.ReplaceAll(base, " ", "-")
}

// GenerateNote renders templateName against the identified exception and
// creates the note inside the subject's folder, named after the exception date
// and the template slug. The note is opened for the user when the vault
// supports it; a failed open is not fatal.
func (svc *Service) GenerateNote(folderName, exceptionID, templateName string) (string, error) {
	i := svc.find(folderName)
	if i < 0 {
		return "", ErrNotFound
	}
	sub := svc.subjects[i]
	j := findException(sub.Exceptions, exceptionID)
	if j < 0 {
		return "", ErrExceptionNotFound
	}
	exc := sub.Exceptions[j]

	tmplPath := path.Join(svc.conf.TemplatesDir, templateName)
	entry, err := svc.vault.FindByPath(tmplPath)
	if err != nil {
		return "", errors.Wrap(err, "locating template")
	}
	if entry == nil || entry.IsFolder {
		return "", ErrTemplateNotFound
	}
	tmpl, err := svc.vault.ReadFile(tmplPath)
	if err != nil {
		return "", errors.Wrap(err, "reading template")
	}

	body := RenderNoteBody(tmpl, sub, exc, svc.mode)
	notePath := path.Join(sub.FolderName, exc.Date+"-"+slugify(templateName)+".md")
	if err := svc.vault.CreateFile(notePath, body); err != nil {
		return "", errors.Wrap(err, "creating note")
	}

	if opener, ok := svc.vault.(core.Opener); ok {
		if err := opener.OpenFile(notePath); err != nil {
			svc.logger.Warn(fmt.Sprintf("opening note %s: %v", notePath, err))
		}
	}

	svc.notifier.Notify(fmt.Sprintf("Note created: %s", notePath))
	return notePath, nil
}
