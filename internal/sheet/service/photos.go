package service

import (
	"context"
	"strings"

	"github.com/festy23/tournament_portal/internal/imaging"
	sheetModel "github.com/festy23/tournament_portal/internal/sheet/model"
	"github.com/festy23/tournament_portal/internal/sheet/repository"
)

// storePhoto saves an uploaded data URI and returns its public URL. An
// unreadable upload is not an error: the record gets the failure marker.
func (s *Service) storePhoto(ctx context.Context, repo repository.Repository, uri string) (string, error) {
	mediaType, data, err := imaging.ParseDataURI(uri)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		s.logger.Warnw("Rejected image upload", "media_type", mediaType, "error", err)
		return sheetModel.InvalidImageMarker, nil
	}

	photo := sheetModel.Photo{
		ID:          s.newID(sheetModel.PrefixPhoto),
		ContentType: mediaType,
		Data:        data,
		CreatedAt:   s.clock.Now(),
	}
	if err := repo.Create(ctx, &photo); err != nil {
		return "", err
	}
	return s.photoBaseURL + "/photos/" + photo.ID, nil
}

// Photo returns a stored photo.
func (s *Service) Photo(ctx context.Context, id string) (*sheetModel.Photo, error) {
	var photo sheetModel.Photo
	if err := s.repo.Find(ctx, &photo, id); err != nil {
		return nil, err
	}
	return &photo, nil
}
