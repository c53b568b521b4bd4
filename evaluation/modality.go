package evaluation

import (
	"maps"
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sirupsen/logrus"
)

// Modality keys produced by the upstream analyzers.
const (
	ModalityBodyRotation = "body_rotation"
	ModalityHeadMotion   = "head_motion"
	ModalityHeadRotation = "head_rotation"
	ModalityHeadPitch    = "head_pitch"
	ModalityHandMotion   = "hand_motion"
	ModalityGazeMotion   = "gaze_motion"
	ModalityBodyTilt     = "body_tilt"
	ModalityExpression   = "expression"
	ModalityContent      = "content"
	ModalityDisfluency   = "disfluency"
)

// MotionModalities lists the motion analyzers in the order they are run and
// searched for a recording duration.
var MotionModalities = []string{
	ModalityBodyRotation,
	ModalityHeadMotion,
	ModalityHeadRotation,
	ModalityHeadPitch,
	ModalityHandMotion,
	ModalityGazeMotion,
	ModalityBodyTilt,
}

// ErrorKey marks a modality whose analyzer failed.
const ErrorKey = "error"

// ModalityResult is the untyped output of one analyzer, or an error marker.
type ModalityResult map[string]any

// ErrorResult builds the marker for a failed analyzer.
func ErrorResult(msg string) ModalityResult {
	return ModalityResult{ErrorKey: msg}
}

// Err returns the error marker message, if any.
func (m ModalityResult) Err() (string, bool) {
	v, ok := m[ErrorKey]
	if !ok {
		return "", false
	}
	msg, _ := v.(string)
	return msg, true
}

// RawResults maps modality key to analyzer output. Evaluators only read it.
type RawResults map[string]ModalityResult

// Clone returns a shallow copy of the top-level map and each modality map.
func (r RawResults) Clone() RawResults {
	if r == nil {
		return nil
	}
	out := make(RawResults, len(r))
	for k, m := range r {
		out[k] = maps.Clone(m)
	}
	return out
}

// inputs is the read-only view handed to every category evaluator.
type inputs struct {
	raw        RawResults
	transcript string
	log        logrus.FieldLogger
}

// available reports whether key is present and carries no error marker.
// Errored modalities are treated exactly like missing ones.
func (in inputs) available(key string) (ModalityResult, bool) {
	m, ok := in.raw[key]
	if !ok || m == nil {
		in.log.WithField("modality", key).Debug("modality absent")
		return nil, false
	}
	if msg, failed := m.Err(); failed {
		in.log.WithFields(logrus.Fields{"modality": key, "upstream_error": msg}).Debug("modality reported an error")
		return nil, false
	}
	return m, true
}

// decode fills out from an available modality. Fields that do not decode are
// left at their zero value; the modality still counts as present.
func (in inputs) decode(key string, out any) bool {
	m, ok := in.available(key)
	if !ok {
		return false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		// out is always a pointer built in this package
		panic(err)
	}
	if err := dec.Decode(map[string]any(m)); err != nil {
		in.log.WithField("modality", key).WithError(err).Debug("malformed modality fields")
	}
	return true
}

// finite returns *p when it is set and a real number.
func finite(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}

func valueOr(p *float64, def float64) float64 {
	if v, ok := finite(p); ok {
		return v
	}
	return def
}

// at reads a finite map entry, zero otherwise.
func at(m map[string]float64, key string) float64 {
	v := m[key]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Modality views. Pointer fields are absent when nil.

type rotationView struct {
	StdDevAngle          *float64           `mapstructure:"std_dev_angle"`
	DirectionPercentages map[string]float64 `mapstructure:"direction_percentages"`
}

type headView struct {
	StabilityScore *float64 `mapstructure:"stability_score"`
}

type handView struct {
	ActivityLevel *string `mapstructure:"activity_level"`
}

type expressionView struct {
	AverageScores map[string]float64 `mapstructure:"average_scores"`
}

// motionView carries the fields every video analyzer reports.
type motionView struct {
	DetectionRate   *float64 `mapstructure:"detection_rate"`
	DurationSeconds *float64 `mapstructure:"duration_seconds"`
}

type metricView struct {
	Score *float64 `mapstructure:"score"`
}

type contentView struct {
	PresentationAnalysis *struct {
		ContentQualityMetrics map[string]metricView `mapstructure:"contentQualityMetrics"`
		OverallScore          *float64              `mapstructure:"overallScore"`
	} `mapstructure:"presentationAnalysis"`
}

type disfluencyView struct {
	TotalDisfluencies *float64           `mapstructure:"total_disfluencies"`
	DisfluencyCounts  map[string]float64 `mapstructure:"disfluency_counts"`
	Stats             *struct {
		DisfluencyCounts map[string]float64 `mapstructure:"disfluency_counts"`
	} `mapstructure:"stats"`
}

// total returns the disfluency count: the explicit total, else the sum of
// the per-type counts.
func (d disfluencyView) total() (float64, bool) {
	if v, ok := finite(d.TotalDisfluencies); ok {
		return v, true
	}
	counts := d.DisfluencyCounts
	if counts == nil && d.Stats != nil {
		counts = d.Stats.DisfluencyCounts
	}
	if counts == nil {
		return 0, false
	}
	var sum float64
	for k := range counts {
		sum += at(counts, k)
	}
	return sum, true
}
