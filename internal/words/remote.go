// internal/words/remote.go
//
// HTTP-backed collaborators:
//   - RemoteSource: random-word API (JSON array of strings) + dictionary check.
//   - DictionaryValidator: dictionary API lookup with a short timeout.
//
// The dictionary validator is permissive: when the API cannot be reached the
// guess is accepted so an outage never blocks play. A non-2xx answer rejects.

package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/multiboard/internal/game"
)

const (
	DefaultRandomURL         = "https://random-word-api.herokuapp.com/word?length=5&number=1"
	DefaultDictionaryURL     = "https://api.dictionaryapi.dev/api/v2/entries/en/"
	defaultDictionaryTimeout = 3 * time.Second
)

// RemoteSource fetches random words over HTTP and confirms them with a
// Validator before handing them out.
type RemoteSource struct {
	client    *http.Client
	randomURL string
	validator Validator
}

// NewRemoteSource builds a RemoteSource. client nil means http.DefaultClient;
// validator nil skips confirmation.
func NewRemoteSource(client *http.Client, randomURL string, validator Validator) *RemoteSource {
	if client == nil {
		client = http.DefaultClient
	}
	if randomURL == "" {
		randomURL = DefaultRandomURL
	}
	return &RemoteSource{client: client, randomURL: randomURL, validator: validator}
}

// ProvideTargetWord returns one validated word. A malformed or unknown word
// yields ErrRejected; transport and status failures are returned as-is.
func (s *RemoteSource) ProvideTargetWord(ctx context.Context) (game.Word, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.randomURL, nil)
	if err != nil {
		return "", err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("random word: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("random word: status %d", res.StatusCode)
	}

	var data []string
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("random word: decode: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrRejected)
	}
	w, err := game.ParseWord(data[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrRejected, data[0])
	}
	if s.validator != nil && !s.validator.IsAcceptableGuess(ctx, w) {
		return "", fmt.Errorf("%w: %s not in dictionary", ErrRejected, w)
	}
	return w, nil
}

// DictionaryValidator checks guesses against a dictionary HTTP API, with a
// local List consulted first.
type DictionaryValidator struct {
	client  *http.Client
	baseURL string
	local   *List
	timeout time.Duration
}

// NewDictionaryValidator builds a validator. local may be nil; timeout <= 0
// uses three seconds.
func NewDictionaryValidator(client *http.Client, baseURL string, local *List, timeout time.Duration) *DictionaryValidator {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultDictionaryURL
	}
	if timeout <= 0 {
		timeout = defaultDictionaryTimeout
	}
	return &DictionaryValidator{client: client, baseURL: baseURL, local: local, timeout: timeout}
}

// IsAcceptableGuess reports whether w is a dictionary word.
func (v *DictionaryValidator) IsAcceptableGuess(ctx context.Context, w game.Word) bool {
	if v.local != nil && v.local.IsAllowed(w) {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	endpoint := strings.TrimRight(v.baseURL, "/") + "/" + url.PathEscape(strings.ToLower(string(w)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warn().Err(err).Str("word", string(w)).Msg("dictionary request")
		return true
	}
	res, err := v.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("word", string(w)).Msg("dictionary check failed; accepting")
		return true
	}
	defer res.Body.Close()
	return res.StatusCode >= 200 && res.StatusCode <= 299
}
