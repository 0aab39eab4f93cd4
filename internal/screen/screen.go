// Package screen holds the search screen controller: it derives lookup endpoints from the
// query and the search direction, and reconciles fetch results into a State.
//
// A Screen is not safe for concurrent use. It is meant to be driven from a single event loop,
// with fetches performed elsewhere and reported back through Complete.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/fwewterm/internal/dictionary"
	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
	"github.com/at-ishikawa/fwewterm/internal/settings"
)

type Screen struct {
	baseURL         string
	store           settings.Store
	defaultLanguage string

	state   State
	seq     uint64
	mounted bool
}

func New(baseURL string, store settings.Store, defaultLanguage string) *Screen {
	return &Screen{
		baseURL:         baseURL,
		store:           store,
		defaultLanguage: defaultLanguage,
		state: State{
			LanguageCode: defaultLanguage,
		},
	}
}

func (s *Screen) State() State {
	return s.state
}

func (s *Screen) Mounted() bool {
	return s.mounted
}

// Mount resets the state to the saved settings and requests the full listing.
// When the settings cannot be loaded, the defaults are used.
func (s *Screen) Mount(ctx context.Context) Request {
	saved, err := s.store.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load settings, using defaults", "error", err)
		saved = settings.Settings{LanguageCode: s.defaultLanguage}
	}
	if saved.LanguageCode == "" {
		saved.LanguageCode = s.defaultLanguage
	}

	s.state = State{
		IsReverseEnabled: saved.ReverseEnabled,
		LanguageCode:     saved.LanguageCode,
	}
	s.mounted = true
	return s.startFetch()
}

func (s *Screen) Unmount() {
	s.state = State{LanguageCode: s.defaultLanguage}
	s.mounted = false
}

// TextChanged always returns a request, even when the text did not change.
func (s *Screen) TextChanged(text string) Request {
	s.state.QueryText = text
	return s.startFetch()
}

// ToggleDirection flips the direction and saves it. A request is returned only when there is
// a query to search again. The direction stays flipped when saving fails.
func (s *Screen) ToggleDirection(ctx context.Context) (Request, bool, error) {
	s.state.IsReverseEnabled = !s.state.IsReverseEnabled

	var saveErr error
	if err := s.store.Save(ctx, settings.Settings{
		LanguageCode:   s.state.LanguageCode,
		ReverseEnabled: s.state.IsReverseEnabled,
	}); err != nil {
		saveErr = fmt.Errorf("store.Save > %w", err)
	}

	if s.state.QueryText == "" {
		return Request{}, false, saveErr
	}
	return s.startFetch(), true, saveErr
}

func (s *Screen) Refresh() Request {
	return s.startFetch()
}

// SelectEntry opens the detail modal for the result at index.
func (s *Screen) SelectEntry(index int) bool {
	if index < 0 || index >= len(s.state.Results) {
		return false
	}
	selected := s.state.Results[index]
	s.state.Selected = &selected
	s.state.ModalVisible = true
	return true
}

func (s *Screen) DismissModal() {
	s.state.ModalVisible = false
}

func (s *Screen) Endpoint() string {
	return dictionary.Endpoint(s.baseURL, s.state.QueryText, s.state.IsReverseEnabled, s.state.LanguageCode)
}

func (s *Screen) startFetch() Request {
	s.seq++
	s.state.Phase = PhaseLoading
	s.state.IsLoading = true
	s.state.Results = []fwew.Word{}
	s.state.Err = nil
	return Request{
		Seq:      s.seq,
		Endpoint: s.Endpoint(),
	}
}

// Complete applies a finished fetch. Responses are applied in arrival order, so an older
// response arriving last overwrites a newer one.
// An error without a structured body leaves the state untouched.
func (s *Screen) Complete(response Response) {
	logger := slog.With("seq", response.Seq, "endpoint", response.Endpoint)
	if !s.mounted {
		logger.Warn("fetch completed after the screen was unmounted")
	}
	if response.Seq < s.seq {
		logger.Debug("applying a stale response", "latest", s.seq)
	}

	if response.Err != nil {
		var apiErr *dictionary.APIError
		if !errors.As(response.Err, &apiErr) {
			logger.Warn("fetch failed without a structured error", "error", response.Err)
			return
		}
		payload := apiErr.Payload
		s.state.Phase = PhaseErrored
		s.state.Err = &payload
		s.state.Results = []fwew.Word{}
		s.state.IsLoading = false
		return
	}

	words := response.Words
	if words == nil {
		words = []fwew.Word{}
	}
	s.state.Phase = PhaseLoaded
	s.state.Results = words
	s.state.Err = nil
	s.state.IsLoading = false
}

// Fetch performs request with fetcher. It blocks until the fetch finishes.
func Fetch(ctx context.Context, fetcher dictionary.Fetcher, request Request) Response {
	words, err := fetcher.Fetch(ctx, request.Endpoint)
	return Response{
		Seq:      request.Seq,
		Endpoint: request.Endpoint,
		Words:    words,
		Err:      err,
	}
}
