package domain

type Outcome string

const (
	OutcomeWait     Outcome = "wait"
	OutcomeComplete Outcome = "complete"
	OutcomeDispute  Outcome = "dispute"
)

// DetectOutcome decides what a return checkpoint resolves to. It must be called with
// freshly read state on every submission: a report may land after the counterpart confirmed.
func DetectOutcome(bothConfirmed, damageReportPresent, ownerNotesPresent bool) Outcome {
	if !bothConfirmed {
		return OutcomeWait
	}
	if damageReportPresent || ownerNotesPresent {
		return OutcomeDispute
	}
	return OutcomeComplete
}
