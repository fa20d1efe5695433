package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func samplePool() []model.Celebrity {
	death := 2016
	return []model.Celebrity{
		{
			ID:                "Q5383",
			Name:              "David Bowie",
			ImageURL:          "https://commons.wikimedia.org/bowie.jpg?width=300",
			BirthYear:         1947,
			Profession:        "singer",
			ProfessionDisplay: "Singer",
			DeathYear:         &death,
		},
		{
			ID:                "Q392",
			Name:              "Bob Dylan",
			ImageURL:          "https://commons.wikimedia.org/dylan.jpg?width=300",
			BirthYear:         1941,
			Profession:        "singer-songwriter",
			ProfessionDisplay: "Singer-Songwriter",
		},
	}
}

func TestPoolStore(t *testing.T) {
	Convey("Given a pool store in a temp directory", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "celebrities.json")
		store := repository.NewPoolStore(path, repository.WithBackupPath(filepath.Join(dir, "celebrities_backup.json")))

		Convey("When loading before any save", func() {
			_, err := store.Load(ctx)

			Convey("Then the pool is reported missing", func() {
				So(errors.Is(err, repository.ErrPoolMissing), ShouldBeTrue)
			})
		})

		Convey("When saving and reloading a pool", func() {
			So(store.Save(ctx, samplePool()), ShouldBeNil)
			got, err := store.Load(ctx)

			Convey("Then the pool round-trips", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, samplePool())
			})

			Convey("Then the file is pretty-printed", func() {
				data, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(strings.Count(string(data), "\n"), ShouldBeGreaterThan, len(samplePool()))
			})
		})

		Convey("When the pool file is corrupt", func() {
			So(os.WriteFile(path, []byte("{nope"), 0o644), ShouldBeNil)
			_, err := store.Load(ctx)

			Convey("Then the load fails with a corruption error", func() {
				So(errors.Is(err, repository.ErrPoolCorrupt), ShouldBeTrue)
			})
		})

		Convey("When backing up with no existing pool", func() {
			backedUp, err := store.Backup(ctx)

			Convey("Then nothing is backed up and no error occurs", func() {
				So(err, ShouldBeNil)
				So(backedUp, ShouldBeFalse)
			})
		})

		Convey("When backing up an existing pool", func() {
			So(store.Save(ctx, samplePool()), ShouldBeNil)
			backedUp, err := store.Backup(ctx)

			Convey("Then the backup is a byte-for-byte copy", func() {
				So(err, ShouldBeNil)
				So(backedUp, ShouldBeTrue)

				orig, _ := os.ReadFile(path)
				copied, err := os.ReadFile(filepath.Join(dir, "celebrities_backup.json"))
				So(err, ShouldBeNil)
				So(string(copied), ShouldEqual, string(orig))
			})
		})
	})
}

func TestDayStore(t *testing.T) {
	Convey("Given a day store in a temp directory", t, func() {
		ctx := context.Background()
		store := repository.NewDayStore(filepath.Join(t.TempDir(), "days"))

		Convey("When writing and reading a slice", func() {
			So(store.WriteSlice(ctx, "4bc0b513f266998b", samplePool()), ShouldBeNil)
			got, err := store.ReadSlice(ctx, "4bc0b513f266998b")

			Convey("Then the slice round-trips", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, samplePool())
			})

			Convey("Then the file is compact single-line JSON", func() {
				data, err := os.ReadFile(filepath.Join(store.Dir(), "4bc0b513f266998b.json"))
				So(err, ShouldBeNil)
				So(strings.Contains(strings.TrimSpace(string(data)), "\n"), ShouldBeFalse)
			})
		})

		Convey("When writing and reading the manifest", func() {
			manifest := map[string]string{"1": "b32fac2cfbb0c827", "2": "4bc0b513f266998b"}
			So(store.WriteManifest(ctx, manifest), ShouldBeNil)
			got, err := store.ReadManifest(ctx)

			Convey("Then the manifest round-trips", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, manifest)
			})

			Convey("Then the manifest is pretty-printed", func() {
				data, err := os.ReadFile(filepath.Join(store.Dir(), "manifest.json"))
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, "\n  \"1\"")
			})
		})

		Convey("When reading a slice that was never written", func() {
			_, err := store.ReadSlice(ctx, "ffffffffffffffff")

			Convey("Then the read fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
