package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/resumesplit/internal/resume"
	"github.com/dgallion1/resumesplit/internal/stats"
)

// Worker processes a single parse job.
type Worker struct {
	latency *stats.Latency
	log     *slog.Logger
}

func NewWorker(latency *stats.Latency, log *slog.Logger) *Worker {
	return &Worker{
		latency: latency,
		log:     log,
	}
}

// Process extracts, normalizes and splits the job's upload.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.Fail("cancelled", err)
		return
	}

	job.SetStatus(StatusParsing, "extracting")
	start := time.Now()
	opts := job.Options()
	doc, err := resume.Extract(bytes.NewReader(job.FileData()), job.Filename, opts...)
	if err != nil {
		w.latency.Record(time.Since(start), err)
		log.Warn("extract failed", "error", err)
		job.Fail("extracting", err)
		return
	}

	job.SetStatus(StatusParsing, "splitting")
	sections := resume.FromDocument(doc, opts...)
	elapsed := time.Since(start)
	w.latency.Record(elapsed, nil)

	job.Complete(len(doc.Pages), sections)
	log.Info("parsed resume", "pages", len(doc.Pages), "duration_ms", elapsed.Milliseconds())
}
