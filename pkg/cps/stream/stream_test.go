package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ib-77/cps/pkg/cps/core"
	"github.com/ib-77/cps/pkg/cps/op"
	"github.com/ib-77/cps/pkg/cps/pipe"
)

// Test Run with a single worker preserving every item
func TestRun_SingleWorker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	input := []int{1, 2, 3, 4, 5}
	expected := []int{2, 4, 6, 8, 10}

	double := op.Map(func(_ context.Context, n int) int { return n * 2 })
	resultCh := Run(ctx, core.ToChanManyResults(ctx, input), double, 1)

	var results []int
	for result := range resultCh {
		if result.IsSuccess() {
			results = append(results, result.Result())
		} else {
			t.Errorf("unexpected error: %v", result.Err())
		}
	}

	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}
	for i, exp := range expected {
		if results[i] != exp {
			t.Errorf("expected %d at %d, got %d", exp, i, results[i])
		}
	}
}

// Test Run with multiple workers; ordering across lines is not guaranteed
func TestRun_MultipleWorkers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 100)
	for i := range input {
		input[i] = i + 1
	}

	slowDouble := op.Try(func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Millisecond)
		return n * 2, nil
	})

	workers := core.GetWorkerMaxCount(core.WithWorkerOptions(ctx, 8), 1)
	resultCh := Run(ctx, core.ToChanManyResults(ctx, input), slowDouble, workers)

	resultMap := make(map[int]bool)
	for result := range resultCh {
		if !result.IsSuccess() {
			t.Errorf("unexpected error: %v", result.Err())
			continue
		}
		resultMap[result.Result()] = true
	}

	if len(resultMap) != len(input) {
		t.Fatalf("expected %d distinct results, got %d", len(input), len(resultMap))
	}
	for _, n := range input {
		if !resultMap[n*2] {
			t.Errorf("expected result %d not found", n*2)
		}
	}
}

func TestTurnout_TypeTransition(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	input := []string{"a", "bb", "ccc"}
	length := op.Map(func(_ context.Context, s string) int { return len(s) })

	resultCh := Turnout(ctx, core.ToChanManyResults(ctx, input), length, 2)

	total := 0
	for result := range resultCh {
		if !result.IsSuccess() {
			t.Errorf("unexpected error: %v", result.Err())
			continue
		}
		total += result.Result()
	}

	if total != 6 {
		t.Fatalf("expected total length 6, got %d", total)
	}
}

func TestRun_PipelineWithFailures(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	engine := pipe.Pipe(
		op.Validate(func(_ context.Context, n int) (bool, string) {
			if n == 0 {
				return false, "zero not allowed"
			}
			return true, ""
		}),
		op.Map(func(_ context.Context, n int) int { return 100 / n }),
	)

	resultCh := Run(ctx, core.ToChanManyResults(ctx, []int{1, 0, 4}), engine, 1)

	var ok, failed int
	for result := range resultCh {
		if result.IsSuccess() {
			ok++
		} else {
			failed++
		}
	}

	if ok != 2 || failed != 1 {
		t.Fatalf("expected 2 successes and 1 failure, got %d/%d", ok, failed)
	}
}

func TestCollect_MapsResultsToValues(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	engine := op.Try(func(_ context.Context, n int) (int, error) {
		if n < 0 {
			return 0, errors.New("negative")
		}
		return n, nil
	})

	out := Collect(ctx,
		Run(ctx, core.ToChanManyResults(ctx, []int{3, -1, 5}), engine, 1),
		CollectHandlers[int, string]{
			OnSuccess: func(_ context.Context, n int) string { return "ok" },
			OnError:   func(_ context.Context, err error) string { return "invalid" },
		})

	counts := map[string]int{}
	for v := range out {
		counts[v]++
	}

	if counts["ok"] != 2 || counts["invalid"] != 1 {
		t.Fatalf("expected 2 ok and 1 invalid, got %v", counts)
	}
}
