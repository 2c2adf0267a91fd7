package params

import (
	"fmt"
	"os"
	"sync"

	"github.com/inovacc/clockr/internal/application"
)

var (
	mu         sync.Mutex
	AppdataDir string
)

// EnsureAppdataDir resolves the data directory, creating it when missing.
// An empty override selects the platform default from the application package.
func EnsureAppdataDir(override string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	dir := override
	if dir == "" {
		def, err := application.GetApplicationDirectory()
		if err != nil {
			return "", err
		}

		dir = def
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	AppdataDir = dir

	return dir, nil
}
