package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type corpusSummary struct {
	files   int
	tracks  int
	noteOns int
	bytes   int64

	densitySum float64
}

func (s *corpusSummary) add(r *result) {
	f := r.features

	s.files++
	s.tracks += f.TracksObserved
	s.bytes += f.FileSize
	s.densitySum += f.Density
	for _, n := range f.NoteOnEvents {
		s.noteOns += n
	}
}

func (s *corpusSummary) meanDensity() float64 {
	if s.files == 0 {
		return 0
	}
	return s.densitySum / float64(s.files)
}

func newCorpusSummary(parent context.Context, paths <-chan string, cntRoutines int) (*corpusSummary, error) {
	log := summaryLog.Named("newCorpusSummary")
	ctx, cancel := context.WithCancel(parent)
	results, done := extractWorker(ctx, paths, cntRoutines)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait extractWorker closed
	}()

	s := new(corpusSummary)

	for result := range results {
		if result.err != nil {
			return nil, result.err
		}

		log.Debug("result",
			zap.String("name", result.name),
			zap.Int("tracks", result.features.TracksObserved),
			zap.Float64("density", result.features.Density),
			zap.String("size", humanize.Bytes(uint64(result.features.FileSize))),
		)

		s.add(result)
	}

	return s, nil
}
