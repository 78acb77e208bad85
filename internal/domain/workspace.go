package domain

// WorkspaceSpec describes where a cookiecalc workspace should be created.
type WorkspaceSpec struct {
	Root string
}
