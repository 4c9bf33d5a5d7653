package main

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pkosyakov/midinspo/pkg/midi"
)

type result struct {
	name     string
	features *midi.Features
	err      error
}

func extractFile(name string) *result {
	out := &result{name: name}
	out.features, out.err = midi.ExtractFeatures(name)
	return out
}

func extractWorker(ctx context.Context, paths <-chan string, cntRoutines int) (<-chan *result, <-chan struct{}) {
	log := extractLog.Named("extractWorker")
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				log.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- extractFile(path):
				case <-ctx.Done():
					log.Debug("context done", zap.String("path", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
