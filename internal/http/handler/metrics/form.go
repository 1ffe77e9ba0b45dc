package metrics

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	formSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shortener",
		Subsystem: "form",
		Name:      "submissions_total",
		Help:      "Number of form submissions by form and result",
	}, []string{"form", "result"})

	formValidationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shortener",
		Subsystem: "form",
		Name:      "validation_errors_total",
		Help:      "Number of validation errors by form, field and type",
	}, []string{"form", "field", "type"})
)

// SubmissionResult classifies the outcome of a form submission. A submitted
// form left invalid was rejected by the backend.
func SubmissionResult(f *form.Form, submitted bool, err error) string {
	switch {
	case err != nil:
		return ResultError
	case !submitted:
		return ResultInvalid
	case !f.IsFormValid():
		return ResultRejected
	default:
		return ResultSuccess
	}
}

// ObserveSubmission records the outcome of a form submission along with the
// errors left on its fields.
func ObserveSubmission(name string, f *form.Form, submitted bool, err error) {
	formSubmissions.WithLabelValues(name, SubmissionResult(f, submitted, err)).Inc()

	for field, errs := range f.Errors() {
		for _, e := range errs {
			formValidationErrors.WithLabelValues(name, field, e.Type).Inc()
		}
	}
}
