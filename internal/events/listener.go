package events

// FuncListener adapts a function to EventListener
type FuncListener struct {
	ListenerID       string
	ListenerPriority int
	Handle           func(Event) error
}

func (f *FuncListener) HandleEvent(event Event) error {
	if f.Handle == nil {
		return nil
	}
	return f.Handle(event)
}

func (f *FuncListener) Priority() int { return f.ListenerPriority }

func (f *FuncListener) ID() string { return f.ListenerID }
