package try

// something have method `Fatal`.
//
// For example in standard libraries: *testing.T, log.Logger
type Fataler interface {
	Fatal(...any)
}

// Wrapper of a pair of (T, error).
//
// When error is nil, such Either is "ok", and the T value is valid.
type Either[T any] interface {

	// get value & error pair.
	Get() (T, error)

	// When Either is "ok", it just returns the T value.
	//
	// Otherwise, it calls ftl.Fatal(err).
	// If ftl has a "Helper()" method (like *testing.T), that is called
	// before Fatal.
	OrFatal(ftl Fataler) T

	// When Either is "ok", it returns the T value.
	// Otherwise, it returns the given default.
	OrDefault(T) T
}

type tryOk[T any] struct {
	val T
}

func (o tryOk[T]) Get() (T, error) { return o.val, nil }
func (o tryOk[T]) OrFatal(Fataler) T { return o.val }
func (o tryOk[T]) OrDefault(T) T { return o.val }

type tryNg[T any] struct {
	err error
}

func (n tryNg[T]) Get() (T, error) { return *new(T), n.err }

func (n tryNg[T]) OrFatal(ftl Fataler) T {
	if h, ok := ftl.(interface{ Helper() }); ok {
		h.Helper()
	}
	ftl.Fatal(n.err)
	return *new(T)
}

func (n tryNg[T]) OrDefault(def T) T { return def }

// To wraps a (value, error) pair into Either.
func To[T any](val T, err error) Either[T] {
	if err != nil {
		return tryNg[T]{err}
	}
	return tryOk[T]{val}
}
