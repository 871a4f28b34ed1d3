package subject

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// numbered subject folders, e.g. "01-Biology"
var subjectFolderRegex = regexp.MustCompile(`^\d+-`)

type ReconcileReport struct {
	Created int `json:"created"`
	Removed int `json:"removed"`
}

// Reconcile brings the vault's top-level folders in line with the persisted
// registry, which is reloaded first and treated as authoritative. Folders
// named by the registry but absent from the vault are created.
//
// Pruning is destructive and therefore strictly opt-in: with prune set,
// top-level folders that look like subject folders (numeric prefix) but have
// no registry entry are deleted recursively. It is never the default.
func (svc *Service) Reconcile(prune bool) (ReconcileReport, error) {
	var report ReconcileReport

	svc.Load()

	existing, err := svc.vault.ListTopLevelFolders()
	if err != nil {
		return report, errors.Wrap(err, "listing vault folders")
	}
	have := make(map[string]bool, len(existing))
	for _, folder := range existing {
		have[folder] = true
	}

	registered := make(map[string]bool, len(svc.subjects))
	for _, sub := range svc.subjects {
		registered[sub.FolderName] = true
		if have[sub.FolderName] {
			continue
		}
		if err := svc.vault.CreateFolder(sub.FolderName); err != nil {
			return report, errors.Wrapf(err, "creating missing folder %q", sub.FolderName)
		}
		report.Created++
	}

	if prune {
		for _, folder := range existing {
			if registered[folder] || !subjectFolderRegex.MatchString(folder) {
				continue
			}
			if err := svc.vault.DeleteFolder(folder, true); err != nil {
				return report, errors.Wrapf(err, "pruning stray folder %q", folder)
			}
			report.Removed++
		}
	}

	svc.notifier.Notify(fmt.Sprintf(
		"Reconcile complete: %d folder(s) created, %d removed", report.Created, report.Removed))
	return report, nil
}
