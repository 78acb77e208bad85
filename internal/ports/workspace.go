package ports

import "github.com/aalvaropc/cookiecalc/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
