//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appconfig "vid2doc/internal/app/config"
	"vid2doc/internal/app/converter"
)

func InitializeConverter(cfg appconfig.Config, logger *zap.SugaredLogger) *converter.Converter {
	wire.Build(converter.NewConverter, provideTranscriber, provideTranscriptionDAO)
	return &converter.Converter{}
}

func InitializeProgressAwareConverter(cfg appconfig.Config, logger *zap.SugaredLogger,
	progressConfig converter.ProgressConfig) *converter.ProgressAwareConverter {
	wire.Build(converter.NewConverter, converter.NewProgressAwareConverter,
		provideTranscriber, provideTranscriptionDAO)
	return &converter.ProgressAwareConverter{}
}
