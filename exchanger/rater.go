package exchanger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lmittmann/tint"
)

// Rating methods accepted by Rater.Rate.
const (
	MethodPNTU             = "P-NTU"
	MethodEffectivenessNTU = "effectiveness-NTU"
)

// ValidationError reports a rating request field that failed validation.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (ve *ValidationError) Error() string {
	return ve.Message
}

// RatingSpec is a complete rating request. Stream 1 is the hot stream for
// the effectiveness-NTU method; for the P-NTU method it is whichever
// stream the chosen subtype defines as stream 1. Zero temperature fields
// are treated as unknown.
type RatingSpec struct {
	Method     string  `json:"method" validate:"required,oneof=P-NTU effectiveness-NTU"`
	Subtype    string  `json:"subtype" validate:"required"`
	M1         float64 `json:"m1" validate:"required,gt=0"`
	M2         float64 `json:"m2" validate:"required,gt=0"`
	Cp1        float64 `json:"cp1" validate:"required,gt=0"`
	Cp2        float64 `json:"cp2" validate:"required,gt=0"`
	T1i        float64 `json:"t1i"`
	T1o        float64 `json:"t1o"`
	T2i        float64 `json:"t2i"`
	T2o        float64 `json:"t2o"`
	UA         float64 `json:"ua" validate:"omitempty,gt=0"`
	Ntp        int     `json:"ntp" validate:"omitempty,min=1"`
	NonOptimal bool    `json:"non_optimal"`
}

// RatingResult carries the outcome of a rating. Exactly one of the two
// sub-results is set, matching the requested method.
type RatingResult struct {
	PNTU             *PNTUResults             `json:"p_ntu,omitempty"`
	EffectivenessNTU *EffectivenessNTUResults `json:"effectiveness_ntu,omitempty"`
}

// Rater is the rating front-end: it validates requests, dispatches to the
// P-NTU or effectiveness-NTU balance solvers, and logs the outcome.
type Rater struct {
	logger   *slog.Logger
	validate *validator.Validate
	settings Settings
}

// NewRater builds a Rater. A nil logger falls back to slog.Default(); a
// zero Settings falls back to DefaultSettings(). The settings are applied
// package-wide, so construct raters before any concurrent use.
func NewRater(logger *slog.Logger, settings Settings) (*Rater, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	if err := Configure(settings); err != nil {
		return nil, err
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Rater{
		logger:   logger.With(slog.String("component", "rater")),
		validate: v,
		settings: settings,
	}, nil
}

// NewDevelopmentLogger returns a colorized slog logger at debug level,
// intended for interactive use.
func NewDevelopmentLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}

// Rate validates spec and solves the heat balance with the requested
// method. Validation failures are reported as *ValidationError.
func (r *Rater) Rate(ctx context.Context, spec RatingSpec) (*RatingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.validate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			ve := &ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("field %s failed validation on the %s rule", fe.Field(), fe.Tag()),
				Value:   fe.Value(),
			}
			r.logger.Warn("rejected rating request",
				slog.String("field", ve.Field),
				slog.String("reason", ve.Message))
			return nil, ve
		}
		return nil, fmt.Errorf("validate rating request: %w", err)
	}

	r.logger.Debug("rating request",
		slog.String("method", spec.Method),
		slog.String("subtype", spec.Subtype),
		slog.Float64("ua", spec.UA))

	result := &RatingResult{}
	switch spec.Method {
	case MethodPNTU:
		res, err := PNTUMethod(PNTUSpec{
			M1:         spec.M1,
			M2:         spec.M2,
			Cp1:        spec.Cp1,
			Cp2:        spec.Cp2,
			Subtype:    spec.Subtype,
			Ntp:        spec.Ntp,
			T1i:        spec.T1i,
			T1o:        spec.T1o,
			T2i:        spec.T2i,
			T2o:        spec.T2o,
			UA:         spec.UA,
			NonOptimal: spec.NonOptimal,
		})
		if err != nil {
			r.logger.Warn("rating failed", slog.String("method", spec.Method), slog.Any("error", err))
			return nil, fmt.Errorf("rate %s exchanger: %w", spec.Subtype, err)
		}
		result.PNTU = &res
		r.logger.Info("rated exchanger",
			slog.String("method", spec.Method),
			slog.Float64("q", res.Q),
			slog.Float64("ua", res.UA))
	case MethodEffectivenessNTU:
		res, err := EffectivenessNTUMethod(EffectivenessNTUSpec{
			Mh:      spec.M1,
			Mc:      spec.M2,
			Cph:     spec.Cp1,
			Cpc:     spec.Cp2,
			Subtype: spec.Subtype,
			Thi:     spec.T1i,
			Tho:     spec.T1o,
			Tci:     spec.T2i,
			Tco:     spec.T2o,
			UA:      spec.UA,
		})
		if err != nil {
			r.logger.Warn("rating failed", slog.String("method", spec.Method), slog.Any("error", err))
			return nil, fmt.Errorf("rate %s exchanger: %w", spec.Subtype, err)
		}
		result.EffectivenessNTU = &res
		r.logger.Info("rated exchanger",
			slog.String("method", spec.Method),
			slog.Float64("q", res.Q),
			slog.Float64("ua", res.UA))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
