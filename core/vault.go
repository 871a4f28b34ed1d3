package core

// Entry describes an existing vault entry.
type Entry struct {
	Path     string
	IsFolder bool
}

// Vault is the hierarchical storage collaborator. Paths are slash-separated
// and relative to the vault root. Implementations report failures as
// *StorageError.
type Vault interface {
	CreateFolder(path string) error
	RenameFolder(oldPath, newPath string) error
	DeleteFolder(path string, recursive bool) error

	ReadFile(path string) (string, error)
	WriteFile(path, text string) error
	// CreateFile fails if an entry already exists at path.
	CreateFile(path, text string) error

	ListTopLevelFolders() ([]string, error)
	// ListFiles returns the basenames of the files directly under folder.
	ListFiles(folder string) ([]string, error)
	// FindByPath returns nil (and no error) when nothing exists at path.
	FindByPath(path string) (*Entry, error)
}

// Opener is implemented by vaults that can bring a file up in the user's
// editor or viewer.
type Opener interface {
	OpenFile(path string) error
}

// Notifier is a fire-and-forget, human-facing message sink. Messages are never
// consulted programmatically.
type Notifier interface {
	Notify(msg string)
}
