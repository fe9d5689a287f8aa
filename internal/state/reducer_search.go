package state

import (
	"fmt"

	"github.com/kk-code-lab/fex/internal/search"
)

func (r *StateReducer) submitSearch(state *AppState, query string) error {
	if query == "" {
		state.clearSearch()
		return nil
	}

	matcher, err := search.Compile(query, r.syntax, !r.caseInsensitive)
	if err != nil {
		state.clearSearch()
		return err
	}
	state.SearchQuery = query
	state.searchMatcher = matcher
	return r.searchForward(state)
}

func (r *StateReducer) matcher(state *AppState) (search.Matcher, error) {
	if state.SearchQuery == "" {
		return nil, nil
	}
	if state.searchMatcher == nil || state.searchMatcher.Pattern() != state.SearchQuery {
		m, err := search.Compile(state.SearchQuery, r.syntax, !r.caseInsensitive)
		if err != nil {
			state.clearSearch()
			return nil, err
		}
		state.searchMatcher = m
	}
	return state.searchMatcher, nil
}

func (r *StateReducer) searchForward(state *AppState) error {
	return r.searchStep(state, search.Forward)
}

func (r *StateReducer) searchBackward(state *AppState) error {
	return r.searchStep(state, search.Backward)
}

type searchFunc func(m search.Matcher, count int, nameAt func(int) string, from int) (int, bool)

func (r *StateReducer) searchStep(state *AppState, step searchFunc) error {
	m, err := r.matcher(state)
	if err != nil || m == nil {
		return err
	}

	nameAt := func(i int) string { return state.Files[i].Name }
	idx, ok := step(m, len(state.Files), nameAt, state.SelectedIndex)
	if !ok {
		state.setStatus(StatusWarning, fmt.Sprintf("pattern not found: %s", state.SearchQuery))
		return nil
	}
	state.SelectedIndex = idx
	return nil
}
