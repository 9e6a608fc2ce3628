package transpile

import (
	"context"
	"sync"

	"github.com/Jvavscratch/utils/internal/codegen"
	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/Jvavscratch/utils/internal/graph"
)

// Run generates every actor on p.Workers concurrent workers. The returned
// slice has one Result per actor, at the actor's input position. A failing
// actor never prevents the others from being generated. Actors not yet
// started when ctx is cancelled fail with the context's error.
func Run(ctx context.Context, actors []graph.RawActor, reg *codegen.Registry, p *config.Profile) []Result {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, len(actors))
	if len(actors) == 0 {
		return results
	}

	workers := p.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(actors) {
		workers = len(actors)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(ctx, workerID, jobs, actors, results, reg, p)
		}(w)
	}
	logger.Debug("Workers started.", "count", workers, "actors", len(actors))

	for i := range actors {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Debug("All actors processed.", "failed", len(Failed(results)))
	return results
}

// worker generates actors until the job channel is closed. Each index is
// written by exactly one worker.
func worker(ctx context.Context, workerID int, jobs <-chan int, actors []graph.RawActor, results []Result, reg *codegen.Registry, p *config.Profile) {
	logger := ctxlog.FromContext(ctx)
	for i := range jobs {
		actor := actors[i]
		if err := ctx.Err(); err != nil {
			results[i] = Result{Actor: actor.Name, IsStage: actor.IsStage, Err: err}
			continue
		}

		workerLogger := logger.With("workerID", workerID, "actor", actor.Name)
		workerLogger.Debug("Worker picked up actor.")
		results[i] = Generate(ctx, actor, reg, p)
		if err := results[i].Err; err != nil {
			workerLogger.Error("Actor generation failed.", "error", err)
			continue
		}
		workerLogger.Debug("Actor generated.", "entries", results[i].Entries, "diagnostics", len(results[i].Diagnostics))
	}
}
