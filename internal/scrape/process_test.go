package scrape

import (
	"testing"

	"github.com/okian/departed/internal/adapters/wikidata"
	"github.com/okian/departed/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(v int) *int { return &v }

func TestProcessRows(t *testing.T) {
	Convey("Given raw rows with duplicates and junk labels", t, func() {
		rows := []wikidata.PersonRow{
			{ID: "Q5383", Name: "David Bowie", ImageURL: "http://commons.wikimedia.org/bowie.jpg", BirthYear: 1947, DeathYear: intPtr(2016)},
			{ID: "Q5383", Name: "David Bowie", ImageURL: "http://commons.wikimedia.org/bowie.jpg", BirthYear: 1947},
			{ID: "Q404", Name: "Q404", ImageURL: "http://commons.wikimedia.org/x.jpg", BirthYear: 1960},
			{ID: "Q392", Name: "Bob Dylan", ImageURL: "http://example.com/dylan.jpg", BirthYear: 1941},
		}

		got := processRows(rows)

		Convey("Then duplicates and ID-shaped names are dropped", func() {
			So(len(got), ShouldEqual, 2)
			So(got[0].ID, ShouldEqual, "Q5383")
			So(got[1].ID, ShouldEqual, "Q392")
		})

		Convey("Then the first occurrence wins, keeping the death year", func() {
			So(got[0].Deceased(), ShouldBeTrue)
			So(*got[0].DeathYear, ShouldEqual, 2016)
		})

		Convey("Then Commons images gain the thumbnail parameter", func() {
			So(got[0].ImageURL, ShouldEqual, "http://commons.wikimedia.org/bowie.jpg?width=300")
			So(got[1].ImageURL, ShouldEqual, "http://example.com/dylan.jpg")
		})

		Convey("Then the placeholder profession is applied", func() {
			So(got[0].Profession, ShouldEqual, "notable person")
			So(got[0].ProfessionDisplay, ShouldEqual, "Notable person")
		})
	})
}

func TestThumbnailURL(t *testing.T) {
	Convey("Given assorted image URLs", t, func() {
		So(thumbnailURL("http://commons.wikimedia.org/a.jpg"), ShouldEqual, "http://commons.wikimedia.org/a.jpg?width=300")
		So(thumbnailURL("http://commons.wikimedia.org/a.jpg?width=600"), ShouldEqual, "http://commons.wikimedia.org/a.jpg?width=600")
		So(thumbnailURL("http://example.com/a.jpg"), ShouldEqual, "http://example.com/a.jpg")
	})
}

func TestApplyOccupations(t *testing.T) {
	Convey("Given a pool with placeholder professions", t, func() {
		pool := []model.Celebrity{
			{ID: "Q5383", Profession: "notable person", ProfessionDisplay: "Notable person"},
			{ID: "Q392", Profession: "notable person", ProfessionDisplay: "Notable person"},
		}

		applyOccupations(pool, map[string]string{"Q5383": "Opera Singer"})

		Convey("Then matched entries get lowercased and display variants", func() {
			So(pool[0].Profession, ShouldEqual, "opera singer")
			So(pool[0].ProfessionDisplay, ShouldEqual, "Opera Singer")
		})

		Convey("Then unmatched entries keep the placeholder", func() {
			So(pool[1].Profession, ShouldEqual, "notable person")
		})
	})
}

func TestTitleCase(t *testing.T) {
	Convey("Given assorted labels", t, func() {
		So(TitleCase("singer"), ShouldEqual, "Singer")
		So(TitleCase("opera singer"), ShouldEqual, "Opera Singer")
		So(TitleCase("CHESS PLAYER"), ShouldEqual, "Chess Player")
		So(TitleCase(""), ShouldEqual, "")

		Convey("Then words starting with a multibyte rune are capitalized", func() {
			So(TitleCase("écrivain"), ShouldEqual, "Écrivain")
			So(TitleCase("écrivain public"), ShouldEqual, "Écrivain Public")
		})
	})
}
