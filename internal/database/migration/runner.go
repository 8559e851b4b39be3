package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

var gooseMu sync.Mutex

// Runner applies the embedded goose migrations. Dir overrides the embedded set
// with an on-disk directory, mainly for local experiments.
type Runner struct {
	Dir string
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	dir := "sql"
	if r.Dir != "" {
		goose.SetBaseFS(nil)
		dir = r.Dir
	} else {
		goose.SetBaseFS(embedded)
	}

	return goose.UpContext(ctx, db, dir)
}

// Files lists the embedded migration file names in version order.
func Files() ([]string, error) {
	entries, err := fs.ReadDir(embedded, "sql")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}
