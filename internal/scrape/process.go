package scrape

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okian/departed/internal/adapters/wikidata"
	"github.com/okian/departed/internal/domain/model"
	"github.com/okian/departed/internal/domain/validate"
	"github.com/okian/departed/pkg/metrics"
)

// Placeholder profession applied until enrichment resolves a real one.
const (
	placeholderProfession        = "notable person"
	placeholderProfessionDisplay = "Notable person"
)

// thumbnailSuffix requests a small rendition from Wikimedia Commons
// instead of the original multi-megabyte upload.
const thumbnailSuffix = "?width=300"

// processRows turns raw query rows into unique celebrities. Rows with
// ID-shaped labels are dropped; the first occurrence of each person
// wins. Input order is preserved so a fixed selection seed keeps pool
// membership reproducible.
func processRows(rows []wikidata.PersonRow) []model.Celebrity {
	seen := make(map[string]struct{}, len(rows))
	celebrities := make([]model.Celebrity, 0, len(rows))

	for _, row := range rows {
		if _, dup := seen[row.ID]; dup {
			metrics.RecordCandidateDropped("duplicate")
			continue
		}
		if validate.LooksLikeEntityID(row.Name) {
			metrics.RecordCandidateDropped("id_shaped_name")
			continue
		}

		seen[row.ID] = struct{}{}
		celebrities = append(celebrities, model.Celebrity{
			ID:                row.ID,
			Name:              row.Name,
			ImageURL:          thumbnailURL(row.ImageURL),
			BirthYear:         row.BirthYear,
			Profession:        placeholderProfession,
			ProfessionDisplay: placeholderProfessionDisplay,
			DeathYear:         row.DeathYear,
		})
	}

	metrics.UpdateCandidatesKept(len(celebrities))
	return celebrities
}

// thumbnailURL appends the thumbnail parameter for Commons images.
func thumbnailURL(imageURL string) string {
	if strings.Contains(imageURL, "commons.wikimedia.org") && !strings.Contains(imageURL, "?") {
		return imageURL + thumbnailSuffix
	}
	return imageURL
}

// applyOccupations overwrites the placeholder profession with resolved
// labels. Unmatched celebrities keep the placeholder.
func applyOccupations(pool []model.Celebrity, occupations map[string]string) {
	for i := range pool {
		if occ, ok := occupations[pool[i].ID]; ok {
			pool[i].Profession = strings.ToLower(occ)
			pool[i].ProfessionDisplay = TitleCase(occ)
		}
	}
}

// TitleCase capitalizes the first rune of every space-separated word.
// Labels are not guaranteed to be ASCII; the endpoint falls back to
// other languages when no English label exists.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
