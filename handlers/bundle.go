package handlers

// HandlerBundle gathers the handlers the router wires up.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Schedule     *ScheduleHandler
}
