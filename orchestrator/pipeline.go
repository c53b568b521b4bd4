// Package orchestrator runs the analyzers on a recording, evaluates their
// results and persists the run.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/maastricht-university/presentation-eval/clients"
	cfg "github.com/maastricht-university/presentation-eval/config"
	"github.com/maastricht-university/presentation-eval/evaluation"
)

type Pipeline struct {
	cfg  *cfg.Root
	http *clients.HTTP
	eval *evaluation.Evaluator
	log  logrus.FieldLogger
}

func NewPipeline(c *cfg.Root, eval *evaluation.Evaluator, log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg:  c,
		http: clients.NewHTTP(c.Pipeline.Timeout(), log),
		eval: eval,
		log:  log,
	}
}

// Run analyzes the recording at videoPath end to end. Analyzer failures do
// not fail the run; they are evaluated as missing modalities. Errors are
// returned for an unreadable recording, cancellation and persistence.
func (p *Pipeline) Run(ctx context.Context, videoPath string) (*Result, error) {
	return p.RunRecord(ctx, NewAnalysisRecord(filepath.Base(videoPath)), videoPath)
}

// RunRecord is Run with a caller-owned record, so progress can be observed
// while the run is in flight.
func (p *Pipeline) RunRecord(ctx context.Context, rec *AnalysisRecord, videoPath string) (*Result, error) {
	log := p.log.WithField("analysis_id", rec.ID())

	info, err := os.Stat(videoPath)
	if err != nil {
		rec.Fail(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	rec.AddMetadata("file_info", map[string]any{
		"size_bytes": info.Size(),
		"extension":  strings.ToLower(filepath.Ext(videoPath)),
	})
	rec.SetStatus(StatusProcessing)
	log.WithField("file", videoPath).Info("analysis started")

	prog := &progress{rec: rec, total: totalSteps}
	raw := p.analyzeVideo(ctx, log, videoPath, prog)
	transcript := p.analyzeSpeech(ctx, log, videoPath, raw, prog)

	if err := ctx.Err(); err != nil {
		rec.Fail(err.Error())
		return nil, fmt.Errorf("analysis %s: %w", rec.ID(), err)
	}

	rep := p.eval.Evaluate(raw, transcript)
	prog.step()
	log.WithFields(logrus.Fields{
		"overall_score": rep.OverallEvaluation.OverallScore,
		"grade":         rep.OverallEvaluation.Grade,
	}).Info("presentation evaluated")

	dir, err := persist(p.cfg.Paths.Outputs, rec, raw, transcript, rep)
	if err != nil {
		rec.Fail(err.Error())
		return nil, err
	}

	res := &Result{Raw: raw, Transcript: transcript, Report: rep, Dir: dir}
	res.RadarPath = p.radar(ctx, log, rec, dir, rep)

	rec.Complete()
	if err := writeRecord(dir, rec); err != nil {
		return nil, err
	}
	res.Record = rec.Snapshot()
	log.WithField("dir", dir).Info("analysis completed")
	return res, nil
}

// analyzeVideo runs the motion analyzers and expression recognition in
// parallel, bounded by pipeline.concurrency.
func (p *Pipeline) analyzeVideo(ctx context.Context, log logrus.FieldLogger, videoPath string, prog *progress) evaluation.RawResults {
	svc := p.cfg.Services
	fps := p.cfg.Pipeline.TargetFPS

	keys := append(append([]string{}, evaluation.MotionModalities...), evaluation.ModalityExpression)
	results := make([]evaluation.ModalityResult, len(keys))

	var g errgroup.Group
	g.SetLimit(p.cfg.Pipeline.Concurrency)
	for i, key := range keys {
		g.Go(func() error {
			if key == evaluation.ModalityExpression {
				results[i] = p.analyze(ctx, log, key, svc.Expression.URL, func(ctx context.Context) (evaluation.ModalityResult, error) {
					return p.http.Expression(ctx, svc.Expression.URL, videoPath, fps)
				})
			} else {
				results[i] = p.analyze(ctx, log, key, svc.Motion.URL, func(ctx context.Context) (evaluation.ModalityResult, error) {
					return p.http.Motion(ctx, svc.Motion.URL, key, videoPath, fps)
				})
			}
			prog.step()
			return nil
		})
	}
	_ = g.Wait()

	raw := make(evaluation.RawResults, len(keys)+2)
	for i, key := range keys {
		raw[key] = results[i]
	}
	return raw
}

// analyzeSpeech transcribes the recording, then rates content and
// disfluency on the transcript. Their results are added to raw.
func (p *Pipeline) analyzeSpeech(ctx context.Context, log logrus.FieldLogger, videoPath string, raw evaluation.RawResults, prog *progress) string {
	svc := p.cfg.Services

	var transcript string
	asr := p.analyze(ctx, log, "asr", svc.ASR.URL, func(ctx context.Context) (evaluation.ModalityResult, error) {
		resp, err := p.http.ASR(ctx, svc.ASR.URL, videoPath)
		if err != nil {
			return nil, err
		}
		transcript = resp.Transcript()
		return evaluation.ModalityResult{"language": resp.Language}, nil
	})
	prog.step()

	if transcript == "" {
		reason := "empty transcript"
		if msg, failed := asr.Err(); failed {
			reason = msg
		}
		raw[evaluation.ModalityContent] = evaluation.ErrorResult("transcript unavailable: " + reason)
		raw[evaluation.ModalityDisfluency] = evaluation.ErrorResult("transcript unavailable: " + reason)
		prog.step()
		prog.step()
		return ""
	}

	var content, disfluency evaluation.ModalityResult
	var g errgroup.Group
	g.Go(func() error {
		content = p.analyze(ctx, log, evaluation.ModalityContent, svc.Content.URL, func(ctx context.Context) (evaluation.ModalityResult, error) {
			return p.http.Content(ctx, svc.Content.URL, transcript)
		})
		prog.step()
		return nil
	})
	g.Go(func() error {
		disfluency = p.analyze(ctx, log, evaluation.ModalityDisfluency, svc.Disfluency.URL, func(ctx context.Context) (evaluation.ModalityResult, error) {
			return p.http.Disfluency(ctx, svc.Disfluency.URL, transcript)
		})
		prog.step()
		return nil
	})
	_ = g.Wait()

	raw[evaluation.ModalityContent] = content
	raw[evaluation.ModalityDisfluency] = disfluency
	return transcript
}

// radar requests the category radar chart. A failure is recorded on the
// run but does not fail it.
func (p *Pipeline) radar(ctx context.Context, log logrus.FieldLogger, rec *AnalysisRecord, dir string, rep *evaluation.Report) string {
	url := p.cfg.Services.Visualization.URL
	if url == "" {
		return ""
	}
	name := rec.Snapshot().Filename
	req := clients.RadarReq{
		StudentName: strings.TrimSuffix(name, filepath.Ext(name)),
		OutputDir:   dir,
	}
	for _, ev := range rep.CategoryEvaluations {
		req.Categories = append(req.Categories, string(ev.Category))
		req.Values = append(req.Values, ev.OverallScore)
	}
	resp, err := p.http.GenerateRadar(ctx, url, req)
	if err != nil {
		log.WithError(err).Warn("radar chart failed")
		rec.AddMetadata("radar_error", err.Error())
		return ""
	}
	rec.AddMetadata("radar_chart", resp.Path)
	return resp.Path
}
