package contactform

// Kind is the three-way view of a Status used to pick a banner.
type Kind string

const (
	KindIdle    Kind = "idle"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Status is the submission state of a form. The concrete types are Idle,
// Submitting, Succeeded and Failed; the set is closed.
type Status interface {
	Kind() Kind
	isStatus()
}

// Idle means no submission outcome is being shown.
type Idle struct{}

// Submitting means a request is outstanding.
type Submitting struct{}

// Succeeded means the last submission was accepted.
type Succeeded struct{}

// Failed means the last submission did not go through. Reason is for logs
// and tests; users see the generic banner.
type Failed struct {
	Reason string
}

func (Idle) Kind() Kind       { return KindIdle }
func (Submitting) Kind() Kind { return KindIdle }
func (Succeeded) Kind() Kind  { return KindSuccess }
func (Failed) Kind() Kind     { return KindError }

func (Idle) isStatus()       {}
func (Submitting) isStatus() {}
func (Succeeded) isStatus()  {}
func (Failed) isStatus()     {}
