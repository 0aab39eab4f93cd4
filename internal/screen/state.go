package screen

import "github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// State is the view state of a search screen.
// While IsLoading is true, Results is empty and Err is nil.
type State struct {
	Phase            Phase
	QueryText        string
	IsLoading        bool
	Results          []fwew.Word
	Err              *fwew.ErrorPayload
	IsReverseEnabled bool
	LanguageCode     string

	ModalVisible bool
	// Selected is kept after the modal is dismissed.
	Selected *fwew.Word
}

// Request is a fetch the caller has to perform and report back with Complete.
type Request struct {
	Seq      uint64
	Endpoint string
}

type Response struct {
	Seq      uint64
	Endpoint string
	Words    []fwew.Word
	Err      error
}
