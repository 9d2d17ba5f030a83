package contracts

// Observer receives a value-changed event from the cell it is subscribed to
type Observer interface {
	ObserverId() string
	Update() error
}

type DependencyGraph interface {
	// Subscribe
	/**
	 * For formula `A3 = A1 + A2`:
	 *   Subscribe("A1", observerOf(A3))
	 *   Subscribe("A2", observerOf(A3))
	 * Subscribing the same observer twice keeps a single registration.
	 */
	Subscribe(source string, observer Observer)

	// Unsubscribe is a no-op when the observer is not registered
	Unsubscribe(source string, observer Observer)

	// Notify calls Update on every subscriber of source and stops on the first error
	Notify(source string) error

	Subscribers(source string) []string
}
