package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pixel-match/db/migrations"
)

// ErrDirty is returned when a previous migration was interrupted and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate moves the result store schema at addr to migrations.Version using
// the embedded migration files. It returns the version found before
// migrating.
func Migrate(addr string) (uint, error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return 0, err
	}
	defer mg.Close()

	before, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}

	if dirty {
		return before, ErrDirty
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return before, err
	}

	return before, nil
}
