package production

import "github.com/andrescamacho/ogametools-go/internal/domain/shared"

// MetricsRecorder receives production evaluation events.
// Implemented by the metrics adapter; nil disables recording.
type MetricsRecorder interface {
	RecordMineEvaluation(resource shared.Resource, levels int)
}

type noOpRecorder struct{}

func (noOpRecorder) RecordMineEvaluation(shared.Resource, int) {}

func recorderOrNoOp(r MetricsRecorder) MetricsRecorder {
	if r == nil {
		return noOpRecorder{}
	}
	return r
}
