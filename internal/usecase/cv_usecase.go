package usecase

import (
	"context"
	"time"

	"github.com/hemant-mistri/portfolio/internal/extractor"
	"github.com/hemant-mistri/portfolio/internal/logger"
	"github.com/hemant-mistri/portfolio/internal/model"
	"github.com/hemant-mistri/portfolio/internal/textsource"
)

type CVUsecase struct {
	decoder   textsource.Decoder
	extractor *extractor.Extractor
	loader    *textsource.Loader
}

func NewCVUsecase(decoder textsource.Decoder, ext *extractor.Extractor, loader *textsource.Loader) *CVUsecase {
	return &CVUsecase{decoder: decoder, extractor: ext, loader: loader}
}

// Extract decodes an in-memory PDF and classifies its text.
func (uc *CVUsecase) Extract(ctx context.Context, data []byte) (model.ExtractedProfile, error) {
	start := time.Now()
	doc, err := uc.decoder.Decode(ctx, data)
	if err != nil {
		return model.ExtractedProfile{}, err
	}

	profile := uc.extractor.Extract(doc)
	logger.Ctx(ctx).Debug().
		Int("lines", len(doc.Lines)).
		Int("skills", len(profile.Skills)).
		Dur("elapsed", time.Since(start)).
		Msg("cv extracted")
	return profile, nil
}

// ExtractSource loads source (path, file URL or http URL) and extracts it.
func (uc *CVUsecase) ExtractSource(ctx context.Context, source string) (model.ExtractedProfile, error) {
	data, err := uc.loader.Load(ctx, source)
	if err != nil {
		return model.ExtractedProfile{}, err
	}
	logger.Ctx(ctx).Debug().Str("source", source).Int("bytes", len(data)).Msg("cv source loaded")
	return uc.Extract(ctx, data)
}
