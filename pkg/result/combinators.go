package result

// Match calls exactly one of onOk or onErr with the active payload.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	switch r := r.(type) {
	case okResult[T, E]:
		return onOk(r.value)
	case errResult[T, E]:
		return onErr(r.err)
	default:
		panic(nilResult())
	}
}

// Cases names the arms of When.
type Cases[T, E, R any] struct {
	Ok  func(T) R
	Err func(E) R
}

// When is Match with named arms.
func When[T, E, R any](r Result[T, E], cases Cases[T, E, R]) R {
	return Match(r, cases.Ok, cases.Err)
}

// Map applies f to an Ok value. An Err passes through untouched.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	switch r := r.(type) {
	case okResult[T, E]:
		return Ok[U, E](f(r.value))
	case errResult[T, E]:
		return Err[U](r.err)
	default:
		panic(nilResult())
	}
}

// MapErr applies f to an Err value. An Ok passes through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	switch r := r.(type) {
	case okResult[T, E]:
		return Ok[T, F](r.value)
	case errResult[T, E]:
		return Err[T](f(r.err))
	default:
		panic(nilResult())
	}
}

// MapOr returns f applied to an Ok value, or fallback for an Err.
func MapOr[T, E, U any](r Result[T, E], f func(T) U, fallback U) U {
	switch r := r.(type) {
	case okResult[T, E]:
		return f(r.value)
	case errResult[T, E]:
		return fallback
	default:
		panic(nilResult())
	}
}

// MapOrElse returns f applied to an Ok value, or errF applied to an Err.
func MapOrElse[T, E, U any](r Result[T, E], f func(T) U, errF func(E) U) U {
	return Match(r, f, errF)
}

// Fold maps both channels at once.
func Fold[T, E, U, F any](r Result[T, E], okF func(T) U, errF func(E) F) Result[U, F] {
	switch r := r.(type) {
	case okResult[T, E]:
		return Ok[U, F](okF(r.value))
	case errResult[T, E]:
		return Err[U](errF(r.err))
	default:
		panic(nilResult())
	}
}

// And returns next if r is Ok, discarding r's value.
func And[T, U, E any](r Result[T, E], next Result[U, E]) Result[U, E] {
	switch r := r.(type) {
	case okResult[T, E]:
		return next
	case errResult[T, E]:
		return Err[U](r.err)
	default:
		panic(nilResult())
	}
}

// AndThen feeds an Ok value into f and returns f's Result. f is not called
// for an Err.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch r := r.(type) {
	case okResult[T, E]:
		return f(r.value)
	case errResult[T, E]:
		return Err[U](r.err)
	default:
		panic(nilResult())
	}
}

// Or returns next if r is Err, discarding r's error.
func Or[T, E, F any](r Result[T, E], next Result[T, F]) Result[T, F] {
	switch r := r.(type) {
	case okResult[T, E]:
		return Ok[T, F](r.value)
	case errResult[T, E]:
		return next
	default:
		panic(nilResult())
	}
}

// OrElse feeds an Err value into f and returns f's Result. f is not called
// for an Ok.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	switch r := r.(type) {
	case okResult[T, E]:
		return Ok[T, F](r.value)
	case errResult[T, E]:
		return f(r.err)
	default:
		panic(nilResult())
	}
}

// Inspect calls f with an Ok value and returns r unchanged.
func Inspect[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	switch v := r.(type) {
	case okResult[T, E]:
		f(v.value)
	case errResult[T, E]:
	default:
		panic(nilResult())
	}
	return r
}

// InspectErr calls f with an Err value and returns r unchanged.
func InspectErr[T, E any](r Result[T, E], f func(E)) Result[T, E] {
	switch v := r.(type) {
	case okResult[T, E]:
	case errResult[T, E]:
		f(v.err)
	default:
		panic(nilResult())
	}
	return r
}

// Flatten removes one level of nesting from an Ok holding a Result.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}

// Collect returns Ok with every value in order, or the first Err.
func Collect[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		switch r := r.(type) {
		case okResult[T, E]:
			values = append(values, r.value)
		case errResult[T, E]:
			return Err[[]T](r.err)
		default:
			panic(nilResult())
		}
	}
	return Ok[[]T, E](values)
}

// Partition splits results into Ok values and Err values, keeping order.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	errs := make([]E, 0)
	for _, r := range results {
		switch r := r.(type) {
		case okResult[T, E]:
			values = append(values, r.value)
		case errResult[T, E]:
			errs = append(errs, r.err)
		default:
			panic(nilResult())
		}
	}
	return values, errs
}
