package result

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// counter wraps f and records how many times it was called.
func counter[A, B any](f func(A) B) (func(A) B, *int) {
	calls := 0
	return func(a A) B {
		calls++
		return f(a)
	}, &calls
}

func TestMatch(t *testing.T) {
	t.Parallel()

	onOk, okCalls := counter(func(v int) string { return "ok:" + strconv.Itoa(v) })
	onErr, errCalls := counter(func(e string) string { return "err:" + e })

	assert.Equal(t, "ok:1", Match(Ok[int, string](1), onOk, onErr))
	assert.Equal(t, "err:x", Match(Err[int]("x"), onOk, onErr))
	assert.Equal(t, 1, *okCalls)
	assert.Equal(t, 1, *errCalls)
}

func TestWhen(t *testing.T) {
	t.Parallel()

	cases := Cases[int, string, string]{
		Ok:  func(v int) string { return "ok:" + strconv.Itoa(v) },
		Err: func(e string) string { return "err:" + e },
	}

	assert.Equal(t, "ok:2", When(Ok[int, string](2), cases))
	assert.Equal(t, "err:y", When(Err[int]("y"), cases))
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	for _, v := range []int{-3, 0, 7} {
		assert.Equal(t, double(v), Map(Ok[int, string](v), double).Unwrap())
	}

	f, calls := counter(double)
	assert.Equal(t, Err[int]("e"), Map(Err[int]("e"), f))
	assert.Zero(t, *calls)
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()

	r := Map(Ok[int, error](12), strconv.Itoa)
	assert.Equal(t, Ok[string, error]("12"), r)
}

func TestMap_CallbackPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "inner", func() {
		Map(Ok[int, string](1), func(int) int { panic("inner") })
	})
}

func TestMap_Laws(t *testing.T) {
	t.Parallel()

	identity := func(v int) int { return v }
	f := func(v int) int { return v + 1 }
	g := func(v int) string { return fmt.Sprint(v * 10) }

	for _, r := range []Result[int, string]{Ok[int, string](4), Err[int]("e")} {
		assert.Equal(t, r, Map(r, identity))
		assert.Equal(t,
			Map(Map(r, f), g),
			Map(r, func(v int) string { return g(f(v)) }))
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrap := func(e string) error { return errors.New("wrapped: " + e) }

	assert.EqualError(t, MapErr(Err[int]("e"), wrap).UnwrapErr(), "wrapped: e")

	g, calls := counter(wrap)
	assert.Equal(t, Ok[int, error](1), MapErr(Ok[int, string](1), g))
	assert.Zero(t, *calls)
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	f, calls := counter(func(v int) string { return strconv.Itoa(v) })

	assert.Equal(t, "5", MapOr(Ok[int, string](5), f, "default"))
	assert.Equal(t, "default", MapOr(Err[int]("bad"), f, "default"))
	assert.Equal(t, 1, *calls)
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()

	f, okCalls := counter(func(v int) int { return v * 2 })
	errF, errCalls := counter(func(e string) int { return len(e) })

	assert.Equal(t, 10, MapOrElse(Ok[int, string](5), f, errF))
	assert.Equal(t, 1, *okCalls)
	assert.Equal(t, 0, *errCalls)

	assert.Equal(t, 4, MapOrElse(Err[int]("four"), f, errF))
	assert.Equal(t, 1, *okCalls)
	assert.Equal(t, 1, *errCalls)
}

func TestFold_AgreesWithMapThenMapErr(t *testing.T) {
	t.Parallel()

	okF := func(v int) string { return strconv.Itoa(v) }
	errF := func(e string) int { return len(e) }

	for _, r := range []Result[int, string]{Ok[int, string](9), Err[int]("abc")} {
		assert.Equal(t, MapErr(Map(r, okF), errF), Fold(r, okF, errF))
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()

	next := Ok[string, string]("next")

	assert.Equal(t, next, And(Ok[int, string](1), next))
	assert.Equal(t, Err[string]("first"), And(Err[int]("first"), next))
	assert.Equal(t, Err[string]("second"), And(Ok[int, string](1), Err[string]("second")))
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int, error] { return Try(func() (int, error) { return strconv.Atoi(s) }) }
	half := func(v int) Result[int, error] {
		if v%2 != 0 {
			return Err[int](fmt.Errorf("%d is odd", v))
		}
		return Ok[int, error](v / 2)
	}

	// left identity
	for _, v := range []int{2, 3} {
		assert.Equal(t, half(v), AndThen(Ok[int, error](v), half))
	}

	// right identity
	r := parse("8")
	assert.Equal(t, r, AndThen(r, func(v int) Result[int, error] { return Ok[int, error](v) }))

	// associativity
	assert.Equal(t,
		AndThen(AndThen(parse("8"), half), half),
		AndThen(parse("8"), func(v int) Result[int, error] { return AndThen(half(v), half) }))

	assert.Equal(t, Ok[int, error](2), AndThen(AndThen(parse("8"), half), half))
	assert.EqualError(t, AndThen(AndThen(parse("6"), half), half).UnwrapErr(), "3 is odd")
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	f, calls := counter(func(v int) Result[string, string] { return Ok[string, string](strconv.Itoa(v)) })

	assert.Equal(t, Err[string]("stop"), AndThen(Err[int]("stop"), f))
	assert.Zero(t, *calls)

	chained := AndThen(AndThen(AndThen(Ok[int, string](1),
		func(int) Result[int, string] { return Err[int]("mid") }),
		func(v int) Result[int, string] { return Ok[int, string](v) }),
		f)
	assert.Equal(t, Err[string]("mid"), chained)
	assert.Zero(t, *calls)
}

func TestOr(t *testing.T) {
	t.Parallel()

	alt := Ok[int, error](9)

	assert.Equal(t, Ok[int, error](1), Or(Ok[int, string](1), alt))
	assert.Equal(t, alt, Or(Err[int]("ignored"), alt))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	soften := func(e string) Result[int, error] {
		if e == "soft" {
			return Ok[int, error](0)
		}
		return Err[int, error](errors.New(e))
	}

	assert.Equal(t, Ok[int, error](0), OrElse(Err[int]("soft"), soften))
	assert.EqualError(t, OrElse(Err[int]("hard"), soften).UnwrapErr(), "hard")

	f, calls := counter(soften)
	assert.Equal(t, Ok[int, error](5), OrElse(Ok[int, string](5), f))
	assert.Zero(t, *calls)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var seen []string
	ok := Ok[int, string](1)
	e := Err[int]("bad")

	assert.Equal(t, ok, Inspect(ok, func(v int) { seen = append(seen, "ok") }))
	assert.Equal(t, e, Inspect(e, func(v int) { seen = append(seen, "ok") }))
	assert.Equal(t, ok, InspectErr(ok, func(e string) { seen = append(seen, "err") }))
	assert.Equal(t, e, InspectErr(e, func(e string) { seen = append(seen, "err:"+e) }))

	assert.Equal(t, []string{"ok", "err:bad"}, seen)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok[int, string](1), Flatten(Ok[Result[int, string], string](Ok[int, string](1))))
	assert.Equal(t, Err[int]("inner"), Flatten(Ok[Result[int, string], string](Err[int]("inner"))))
	assert.Equal(t, Err[int]("outer"), Flatten(Err[Result[int, string]]("outer")))
}

func TestCollect(t *testing.T) {
	t.Parallel()

	all := []Result[int, string]{Ok[int, string](1), Ok[int, string](2)}
	assert.Equal(t, Ok[[]int, string]([]int{1, 2}), Collect(all))

	mixed := []Result[int, string]{Ok[int, string](1), Err[int]("a"), Err[int]("b")}
	assert.Equal(t, Err[[]int]("a"), Collect(mixed))

	assert.Equal(t, Ok[[]int, string]([]int{}), Collect[int, string](nil))
}

func TestPartition(t *testing.T) {
	t.Parallel()

	values, errs := Partition([]Result[int, string]{
		Ok[int, string](1), Err[int]("a"), Ok[int, string](2), Err[int]("b"),
	})
	assert.Equal(t, []int{1, 2}, values)
	assert.Equal(t, []string{"a", "b"}, errs)
}
