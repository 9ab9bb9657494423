package dnacore

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
)

// stderr is for logging to Stderr (without an annoying timestamp),
// matching internal/repp/input.go and internal/rvec/features.go.
var stderr = log.New(os.Stderr, "", 0)

// AttachCandidates returns the external candidates for s, to be stored
// in s.ExternalCandidates by the caller, for breeds U(pstream) and
// D(ownstream), per §4.5's "Candidate lookup": other breeds get an
// empty list. proxy may be nil, which also yields an empty list.
func AttachCandidates(proxy CandidateProxy, proxyURL string, s DNASlice, geneName string) []Candidate {
	var breedCode string
	switch s.Breed {
	case BUpstream:
		breedCode = "U"
	case BDownstream:
		breedCode = "D"
	default:
		return nil
	}
	if proxy == nil || proxyURL == "" {
		return nil
	}

	insertName := "US_" + geneName
	if breedCode == "D" {
		insertName = "DS_" + geneName
	}

	return proxy.FetchCandidates(proxyURL, insertName, breedCode)
}

// HTTPCandidateProxy is the default CandidateProxy implementation,
// querying a JSON HTTP endpoint. On any I/O or decode failure it logs a
// best-effort warning and degrades to an empty list rather than
// propagating an error, per §4.5/§7.
type HTTPCandidateProxy struct {
	Client *http.Client
}

// FetchCandidates implements CandidateProxy.
func (p HTTPCandidateProxy) FetchCandidates(baseURL, name, breedCode string) []Candidate {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("breed", breedCode)
	reqURL := baseURL + "?" + q.Encode()

	resp, err := client.Get(reqURL)
	if err != nil {
		stderr.Printf("candidate proxy lookup failed for %s: %v", name, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		stderr.Printf("candidate proxy lookup for %s returned %d", name, resp.StatusCode)
		return nil
	}

	var candidates []Candidate
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		stderr.Printf("candidate proxy response for %s was malformed: %v", name, err)
		return nil
	}
	return candidates
}
