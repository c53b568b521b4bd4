package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/presentation-eval/evaluation"
)

// totalSteps: seven motion analyzers, expression, transcription, content,
// disfluency and the evaluation itself.
var totalSteps = len(evaluation.MotionModalities) + 5

// progress advances the record by one step per finished stage.
type progress struct {
	mu    sync.Mutex
	rec   *AnalysisRecord
	done  int
	total int
}

func (p *progress) step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.rec.SetProgress(p.done * 100 / p.total)
}

type analyzerFunc func(ctx context.Context) (evaluation.ModalityResult, error)

// analyze runs one analyzer and never fails: an unconfigured service, a
// transport or status error, or an empty answer all become an error marker.
func (p *Pipeline) analyze(ctx context.Context, log logrus.FieldLogger, name, url string, call analyzerFunc) evaluation.ModalityResult {
	log = log.WithField("analyzer", name)
	if url == "" {
		log.Debug("analyzer not configured")
		return evaluation.ErrorResult(fmt.Sprintf("%s analyzer not configured", name))
	}

	start := time.Now()
	out, err := call(ctx)
	log = log.WithField("elapsed", time.Since(start).Round(time.Millisecond))
	switch {
	case err != nil:
		log.WithError(err).Warn("analyzer failed")
		return evaluation.ErrorResult(err.Error())
	case out == nil:
		log.Warn("analyzer returned no result")
		return evaluation.ErrorResult(fmt.Sprintf("%s returned no result", name))
	}
	log.Info("analyzer finished")
	return out
}
