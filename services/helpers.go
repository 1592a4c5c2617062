package services

import (
	"fmt"
	"time"

	"github.com/opencourt/tournament-api/models"
	"github.com/opencourt/tournament-api/storage"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return parsed, nil
}

func computePages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func populateAthletePhotoURL(athlete *models.Athlete, uploader storage.FileUploader) {
	if athlete != nil && athlete.PhotoKey != nil && *athlete.PhotoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*athlete.PhotoKey)
		athlete.PhotoURL = &url
	}
}
