package interfaces

// IAssessmentDispatcher hands a created assessment id to the background
// worker pool. Submit is fire-and-forget from the caller's point of view; it
// returns an error only when the queue cannot accept the job (load shedding).
type IAssessmentDispatcher interface {
	Submit(assessmentID string) error
}
