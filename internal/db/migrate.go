package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adpulse/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed halfway and
// the schema needs manual repair.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate moves the creative schema at addr to target and returns the
// version it started from. A target of 0 reverts every migration. Running
// it again with the same target is a no-op.
func Migrate(addr string, target uint) (uint, error) {
	if target > migrations.Version {
		return 0, fmt.Errorf("target version %d is newer than the embedded schema %d", target, migrations.Version)
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return current, fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}

	if target == 0 {
		err = mg.Down()
	} else {
		err = mg.Migrate(target)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return current, err
	}
	return current, nil
}
