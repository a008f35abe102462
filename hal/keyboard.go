package hal

// keyQueue is a bounded event channel. Events are dropped when the consumer
// falls behind.
type keyQueue struct {
	ch chan KeyEvent
}

func newKeyQueue() *keyQueue {
	return &keyQueue{ch: make(chan KeyEvent, 64)}
}

func (k *keyQueue) Events() <-chan KeyEvent { return k.ch }

func (k *keyQueue) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}
