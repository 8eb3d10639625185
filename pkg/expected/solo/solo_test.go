package solo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/expected/pkg/expected"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
	return func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
		if v < 0 {
			return expected.Fail[int](errors.New("negative"))
		}
		return expected.Success[int, error](v)
	}
}

func validateEven(v int) func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
	return func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
		if v%2 != 0 {
			return expected.Fail[int](errors.New("odd"))
		}
		return expected.Success[int, error](v)
	}
}

func passThrough[T any]() func(ctx context.Context, in expected.Expected[T, error]) expected.Expected[T, error] {
	return func(ctx context.Context, in expected.Expected[T, error]) expected.Expected[T, error] { return in }
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	positive := func(_ context.Context, in int) (bool, string) {
		if in <= 0 {
			return false, "must be positive"
		}
		return true, ""
	}

	if res := Validate(ctx, 5, positive); !res.IsSuccess() || res.MustValue() != 5 {
		t.Fatalf("expected success(5), got %v", res)
	}
	if res := Validate(ctx, -1, positive); res.IsSuccess() || res.MustError() != "must be positive" {
		t.Fatalf("expected error(must be positive), got %v", res)
	}

	called := false
	res := AndValidate(ctx, Fail[int]("earlier"), func(_ context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})
	if called {
		t.Fatalf("validator must not run on error input")
	}
	if res.MustError() != "earlier" {
		t.Fatalf("expected earlier error to pass through, got %v", res)
	}
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even
	res := ValidateAll[int](ctx, Succeed[int, error](v), true, validateNonNegative(v), validateEven(v))

	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res)
	}
	if res.MustValue() != v {
		t.Fatalf("expected result %d, got %d", v, res.MustValue())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd

	executed := 0
	v1 := func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}
	v2 := func(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll[int](ctx, Succeed[int, error](v), true, v1, v2)

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res)
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	if err := res.MustError(); err == nil || err.Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", err)
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd

	res := ValidateAll[int](ctx, Succeed[int, error](v), false,
		validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res)
	}

	errs := expected.GetErrors(res.MustError())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

// validators built on AndValidate pass an already failed input through unchanged
func checkNonNegative(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
	return AndValidate(ctx, in, func(_ context.Context, v int) (bool, error) {
		return v >= 0, errors.New("negative")
	})
}

func checkEven(ctx context.Context, in expected.Expected[int, error]) expected.Expected[int, error] {
	return AndValidate(ctx, in, func(_ context.Context, v int) (bool, error) {
		return v%2 == 0, errors.New("odd")
	})
}

func TestValidateAll_AndValidateSteps_EachErrorOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := ValidateAll[int](ctx, Succeed[int, error](-3), false, checkNonNegative, checkEven, passThrough[int]())

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res)
	}

	errs := expected.GetErrors(res.MustError())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %q", len(errs), res.MustError().Error())
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'odd'], got ['%s','%s']", errs[0].Error(), errs[1].Error())
	}

	ok := ValidateAll[int](ctx, Succeed[int, error](4), false, checkNonNegative, checkEven)
	if !ok.IsSuccess() || ok.MustValue() != 4 {
		t.Fatalf("expected success(4), got %v", ok)
	}
}

func TestJoin_ThreadsResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	addOne := func(_ context.Context, in expected.Expected[int, string]) expected.Expected[int, string] {
		return expected.Map(in, func(v int) int { return v + 1 })
	}
	failAt := func(limit int) func(context.Context, expected.Expected[int, string]) expected.Expected[int, string] {
		return func(_ context.Context, in expected.Expected[int, string]) expected.Expected[int, string] {
			return expected.Bind(in, func(v int) expected.Expected[int, string] {
				if v >= limit {
					return expected.Fail[int]("limit " + strconv.Itoa(limit))
				}
				return in
			})
		}
	}
	keep := func(_ context.Context, current expected.Expected[int, string]) expected.Expected[int, string] {
		return current
	}

	if res := Join(ctx, Succeed[int, string](0), true, keep, addOne, addOne, addOne); res.MustValue() != 3 {
		t.Fatalf("expected 3, got %v", res)
	}

	calls := 0
	counted := func(ctx context.Context, in expected.Expected[int, string]) expected.Expected[int, string] {
		calls++
		return addOne(ctx, in)
	}
	res := Join(ctx, Succeed[int, string](0), true, keep, addOne, failAt(1), counted)
	if res.MustError() != "limit 1" || calls != 0 {
		t.Fatalf("expected error(limit 1) with no later steps, got %v after %d calls", res, calls)
	}

	if res := Join(ctx, Succeed[int, string](5), false, nil, addOne); res.MustValue() != 5 {
		t.Fatalf("expected input back without concat, got %v", res)
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res := ValidateAll[int](ctx, Fail[int](errors.New("initial")), true, passThrough[int]())

	if res.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if err := res.MustError(); err.Error() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", err)
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before running

	res := ValidateAll[int](ctx, Succeed[int, error](42), false, validateNonNegative(42), validateEven(42))

	if !res.IsSuccess() || res.MustValue() != 42 {
		t.Fatalf("expected original success(42), got %v", res)
	}
}

func TestSwitchAndMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := func(_ context.Context, s string) expected.Expected[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return expected.Fail[int]("not a number: " + s)
		}
		return expected.Success[int, string](n)
	}

	if res := Switch(ctx, Succeed[string, string]("21"), parse); res.MustValue() != 21 {
		t.Fatalf("expected 21, got %v", res)
	}
	if res := Switch(ctx, Succeed[string, string]("x"), parse); res.MustError() != "not a number: x" {
		t.Fatalf("expected parse error, got %v", res)
	}
	if res := Switch(ctx, Fail[string]("upstream"), parse); res.MustError() != "upstream" {
		t.Fatalf("expected upstream error, got %v", res)
	}

	double := func(_ context.Context, n int) int { return n * 2 }
	if res := Map(ctx, Succeed[int, string](21), double); res.MustValue() != 42 {
		t.Fatalf("expected 42, got %v", res)
	}
	if res := Map(ctx, Fail[int]("upstream"), double); res.MustError() != "upstream" {
		t.Fatalf("expected upstream error, got %v", res)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	atoi := func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }

	if res := Try(ctx, Succeed[string, error]("7"), atoi); res.MustValue() != 7 {
		t.Fatalf("expected 7, got %v", res)
	}

	res := Try(ctx, Succeed[string, error]("seven"), atoi)
	var numErr *strconv.NumError
	if !errors.As(res.MustError(), &numErr) {
		t.Fatalf("expected *strconv.NumError, got %v", res)
	}

	upstream := errors.New("upstream")
	if res := Try(ctx, Fail[string](upstream), atoi); res.MustError() != upstream {
		t.Fatalf("expected upstream error, got %v", res)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("boom")
	check := func(_ context.Context, in int) error {
		if in > 10 {
			return boom
		}
		return nil
	}

	if res := FailOnError(ctx, Succeed[int, error](3), check); res.MustValue() != 3 {
		t.Fatalf("expected 3, got %v", res)
	}
	if res := FailOnError(ctx, Succeed[int, error](30), check); res.MustError() != boom {
		t.Fatalf("expected boom, got %v", res)
	}
}

func TestTees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var seen []string

	ok := Succeed[int, string](1)
	bad := Fail[int]("bad")

	Tee(ctx, ok, func(_ context.Context, r expected.Expected[int, string]) { seen = append(seen, "tee") })
	Tee(ctx, bad, func(_ context.Context, r expected.Expected[int, string]) { seen = append(seen, "tee-bad") })

	always := func(context.Context, expected.Expected[int, string]) bool { return true }
	never := func(context.Context, expected.Expected[int, string]) bool { return false }
	TeeIf(ctx, ok, always, func(context.Context, expected.Expected[int, string]) { seen = append(seen, "teeif") })
	TeeIf(ctx, ok, never, func(context.Context, expected.Expected[int, string]) { seen = append(seen, "teeif-never") })

	out := DoubleTee(ctx, bad,
		func(_ context.Context, r int) { seen = append(seen, "double-ok") },
		func(_ context.Context, e string) { seen = append(seen, "double-"+e) })

	want := []string{"tee", "teeif", "double-bad"}
	if fmt.Sprint(seen) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	if out != bad {
		t.Fatalf("DoubleTee must return its input unchanged, got %v", out)
	}
}

func TestDoubleMapAndFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reported := ""
	toText := func(_ context.Context, n int) string { return strconv.Itoa(n) }
	report := func(_ context.Context, e int) { reported = strconv.Itoa(e) }

	if res := DoubleMap(ctx, Succeed[int, int](5), toText, report); res.MustValue() != "5" {
		t.Fatalf("expected \"5\", got %v", res)
	}
	res := DoubleMap(ctx, Fail[int](16), toText, report)
	if res.MustError() != 16 || reported != "16" {
		t.Fatalf("expected error(16) reported, got %v (reported %q)", res, reported)
	}

	collapse := func(r expected.Expected[int, int]) string {
		return Finally(ctx, r, toText, func(_ context.Context, e int) string { return "err:" + strconv.Itoa(e) })
	}
	if got := collapse(Succeed[int, int](1)); got != "1" {
		t.Fatalf("expected 1, got %s", got)
	}
	if got := collapse(Fail[int](2)); got != "err:2" {
		t.Fatalf("expected err:2, got %s", got)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fallback := func(_ context.Context, e string) expected.Expected[int, string] {
		if e == "missing" {
			return expected.Success[int, string](0)
		}
		return expected.Fail[int](e)
	}

	if res := Recover(ctx, Fail[int]("missing"), fallback); res.MustValue() != 0 {
		t.Fatalf("expected recovered 0, got %v", res)
	}
	if res := Recover(ctx, Fail[int]("fatal"), fallback); res.MustError() != "fatal" {
		t.Fatalf("expected fatal, got %v", res)
	}
	if res := Recover(ctx, Succeed[int, string](9), fallback); res.MustValue() != 9 {
		t.Fatalf("expected 9, got %v", res)
	}
}
