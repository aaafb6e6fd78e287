package extract

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SaveReport writes a completeness report as TOML. Reports are written
// for failed audits too, so a failed extraction leaves its evidence even
// though no constants are emitted.
func SaveReport(rep *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(rep)
}
