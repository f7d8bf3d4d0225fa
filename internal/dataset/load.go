// Package dataset loads and validates the two input documents: the resume
// dataset and the profile set.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mschulz/resume-tailor/internal/types"
)

// httpTimeout bounds a single remote document fetch.
const httpTimeout = 30 * time.Second

// Load reads both documents concurrently. The two fetches are independent
// and order-free, but both must succeed before any generation can occur.
func Load(ctx context.Context, resumeSource, profilesSource string) (*types.ResumeDataset, *types.ProfileSet, error) {
	var resume *types.ResumeDataset
	var profiles *types.ProfileSet

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := LoadResume(gCtx, resumeSource)
		if err != nil {
			return err
		}
		resume = r
		return nil
	})

	g.Go(func() error {
		p, err := LoadProfiles(gCtx, profilesSource)
		if err != nil {
			return err
		}
		profiles = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return resume, profiles, nil
}

// LoadResume reads and parses the resume dataset from a file path or URL.
func LoadResume(ctx context.Context, source string) (*types.ResumeDataset, error) {
	content, err := read(ctx, source)
	if err != nil {
		return nil, err
	}

	var resume types.ResumeDataset
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to unmarshal resume JSON", Cause: err}
	}

	return &resume, nil
}

// LoadProfiles reads and parses the profile set from a file path or URL.
// Every stored profile must carry an id and at least one priority tag.
func LoadProfiles(ctx context.Context, source string) (*types.ProfileSet, error) {
	content, err := read(ctx, source)
	if err != nil {
		return nil, err
	}

	var profiles types.ProfileSet
	if err := json.Unmarshal(content, &profiles); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to unmarshal profiles JSON", Cause: err}
	}

	for i := range profiles.Profiles {
		if err := profiles.Profiles[i].Validate(); err != nil {
			return nil, &LoadError{
				Source:  source,
				Message: fmt.Sprintf("profile %q failed validation", profiles.Profiles[i].ID),
				Cause:   err,
			}
		}
	}

	return &profiles, nil
}

// read retrieves the raw bytes of a source, which may be a local file path
// or an http(s) URL. A non-2xx status is an error; the engine never sees
// partially-loaded documents.
func read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return readURL(ctx, source)
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "failed to read file", Cause: err}
	}
	return content, nil
}

func readURL(ctx context.Context, source string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "failed to build request", Cause: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{
			Source:  source,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: source, Message: "failed to read response body", Cause: err}
	}
	return content, nil
}
