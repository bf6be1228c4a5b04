package tests

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ib-77/cps/pkg/cps"
	"github.com/ib-77/cps/pkg/cps/adapt"
	"github.com/ib-77/cps/pkg/cps/core"
	"github.com/ib-77/cps/pkg/cps/op"
	"github.com/ib-77/cps/pkg/cps/pipe"
	"github.com/ib-77/cps/pkg/cps/stream"

	"github.com/stretchr/testify/assert"
)

// TestURLProcessing drives the full engine over a batch of URLs: validation,
// a mocked asynchronous fetch, and a length computation, fanned over workers.
func TestURLProcessing(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",

		// invalid by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(urls)

	validCount := 0
	invalidCount := 0
	for _, res := range results {
		if res == "invalid" {
			invalidCount++
		} else {
			validCount++
		}
	}

	assert.Equal(t, len(urls), len(results))
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, 4, validCount)
}

func processRequest(urls []string) []string {
	ctx := context.Background()

	engine := pipe.Join(
		pipe.Join(
			pipe.Pipe(op.Validate(validateURL)),
			op.Defer(mockFetchTitle),
			nil,
		),
		op.Map(calculateTitleLength),
		nil,
	)

	return core.FromChanMany(ctx,
		stream.Collect(ctx,
			stream.Turnout(ctx, core.ToChanManyResults(ctx, urls), engine, 2),
			stream.CollectHandlers[int, string]{
				OnSuccess: func(_ context.Context, r int) string {
					return fmt.Sprintf("title length: %d", r)
				},
				OnError: func(_ context.Context, err error) string {
					return "invalid"
				},
			},
		),
	)
}

// TestRequestResponseAdapter covers the blocking unary form end to end.
func TestRequestResponseAdapter(t *testing.T) {
	ctx := context.Background()

	fetchLength := adapt.Sync(pipe.Join(
		pipe.Pipe(op.Validate(validateURL)),
		op.Try(func(ctx context.Context, url string) (int, error) {
			title, err := mockFetchTitle(ctx, url)
			if err != nil {
				return 0, err
			}
			return len(title), nil
		}),
		nil,
	))

	n, err := fetchLength(ctx, "https://www.example.com")
	assert.NoError(t, err)
	assert.Equal(t, len("Mock Page Title for https://www.example.com"), n)

	_, err = fetchLength(ctx, "invalid-url")
	assert.Error(t, err)
}

// TestDebouncedIngest verifies that a burst collapses to the last value and
// that every superseded caller still gets an answer.
func TestDebouncedIngest(t *testing.T) {
	ctx := context.Background()

	search := pipe.Pipe(
		op.Debounce[string](30*time.Millisecond),
		op.Map(func(_ context.Context, q string) string { return "results for " + q }),
	)

	delivered := make(chan cps.Result[string], 8)
	fireQuery := func(q string) {
		search(ctx, cps.Success(q),
			func(r cps.Result[string]) { delivered <- r },
			func(r cps.Result[string]) { delivered <- r })
	}

	fireQuery("g")
	fireQuery("go")
	fireQuery("gol")
	fireQuery("golang")

	var answers []string
	for range 4 {
		select {
		case r := <-delivered:
			assert.True(t, r.IsSuccess())
			answers = append(answers, r.Result())
		case <-time.After(time.Second):
			t.Fatal("a caller was left hanging")
		}
	}

	// superseded callers resolve with the raw value; only the survivor runs
	// the rest of the pipeline
	assert.Equal(t, []string{"g", "go", "gol", "results for golang"}, answers)
}

func mockFetchTitle(ctx context.Context, url string) (string, error) {
	valid, _ := validateURL(ctx, url)
	if valid {
		return "Mock Page Title for " + url, nil
	}
	return "", fmt.Errorf("invalid URL")
}

func validateURL(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func calculateTitleLength(_ context.Context, title string) int {
	return len(title)
}
